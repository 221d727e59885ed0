package couple

import "strings"

// Raw is the parsed-but-unvalidated config mapping. JSON numbers arrive as
// json.Number so opaque video values survive the round trip into rendered
// output unchanged.
type Raw map[string]any

// Video is one entry of the videos sequence. Beyond the five required keys
// checked by Validate, its values are opaque and pass through verbatim into
// the serialized video list.
type Video map[string]any

// RequiredVideoFields lists the keys every video entry must carry, in the
// order validation reports them.
var RequiredVideoFields = []string{"id", "title", "category", "duration", "order"}

// Config is the validated couple record. It is immutable once built and lives
// only for the duration of one generation run.
type Config struct {
	Slug      string
	Names     []string
	Date      string
	DateShort string
	Videos    []Video
}

// DisplayNames joins the two names the way the delivery page shows them.
func (c Config) DisplayNames() string {
	return strings.Join(c.Names, " & ")
}
