package translate

import (
	"fmt"
	"regexp"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/lightvector/ogstosgf/internal/domain/ogs"
	"github.com/lightvector/ogstosgf/internal/domain/sgf"
)

const unknownGameID = "Unknown"

// translation holds the state of one Translate call.
type translation struct {
	opts Options
	log  *zap.SugaredLogger
	rec  ogs.Record

	gameID   string
	warnings []string
	info     GameInfo

	doc       *sgf.SGF
	root      *sgf.Node
	extraInfo []string

	width         int
	height        int
	handicap      int
	freePlacement bool
	blackFirst    bool
}

func newTranslation(opts Options, log *zap.SugaredLogger, rec ogs.Record) *translation {
	gameID := unknownGameID
	if id := rec.Get(ogs.FieldGameID); ogs.IsSet(id) && ogs.Text(id) != "" {
		gameID = ogs.Text(id)
	}
	doc := sgf.New()
	return &translation{
		opts:       opts,
		log:        log,
		rec:        rec,
		gameID:     gameID,
		doc:        doc,
		root:       doc.RootNode(),
		width:      19,
		height:     19,
		blackFirst: true,
	}
}

func (t *translation) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	t.warnings = append(t.warnings, msg)
	t.log.Warnw(msg, "game_id", t.gameID)
}

// get looks field up in obj. Absence is reported only when logIfAbsent is set;
// a field present with null is returned as is and never reported.
func (t *translation) get(obj gjson.Result, field string, logIfAbsent bool) gjson.Result {
	v := obj.Get(field)
	if !v.Exists() && logIfAbsent {
		t.warn("JSON field not found for game %s: %s", t.gameID, field)
	}
	return v
}

func (t *translation) getInt(obj gjson.Result, field string, def int, logIfAbsent bool) int {
	v := t.get(obj, field, logIfAbsent)
	if !ogs.IsSet(v) {
		return def
	}
	return int(v.Int())
}

var embeddedTags = map[string]*regexp.Regexp{
	"DT": embeddedTagPattern("DT"),
	"PB": embeddedTagPattern("PB"),
	"PW": embeddedTagPattern("PW"),
}

func embeddedTagPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^A-Za-z])` + regexp.QuoteMeta(tag) + `\[([^\[\]]+)\]`)
}

// getEmbedded returns the first value of tag inside raw SGF text.
func (t *translation) getEmbedded(sgfText, tag string, logIfAbsent bool) (string, bool) {
	re, ok := embeddedTags[tag]
	if !ok {
		re = embeddedTagPattern(tag)
	}
	if m := re.FindStringSubmatch(sgfText); m != nil {
		return m[1], true
	}
	if logIfAbsent {
		t.warn("SGF field not found for game %s: %s", t.gameID, tag)
	}
	return "", false
}
