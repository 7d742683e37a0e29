package translate

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/lightvector/ogstosgf/internal/domain/ogs"
)

const (
	systemByoyomi  = "byoyomi"
	systemFischer  = "fischer"
	systemSimple   = "simple"
	systemCanadian = "canadian"
	systemAbsolute = "absolute"
	systemNone     = "none"
)

func (t *translation) translateTimeControl() {
	tc := t.get(t.rec.Result, ogs.FieldTimeControl, false)
	if !ogs.IsSet(tc) {
		return
	}

	// older records keep the system in time_control.time_control, newer ones in time_control.system
	system := t.get(tc, ogs.FieldTimeControl, false)
	if !ogs.IsSet(system) {
		system = t.get(tc, ogs.FieldSystem, false)
	}
	if !ogs.IsSet(system) {
		system = t.get(tc, ogs.FieldTimeControl, true)
	}
	name := ogs.Text(system)

	switch name {
	case systemByoyomi:
		if v, ok := t.required(tc, ogs.FieldMainTime, ogs.FieldPeriodTime, ogs.FieldPeriods); ok {
			t.root.Add("TM", v[0])
			t.root.Add("OT", fmt.Sprintf("%sx%s byo-yomi", v[2], v[1]))
		}
	case systemFischer:
		if v, ok := t.required(tc, ogs.FieldInitialTime, ogs.FieldTimeIncrement); ok {
			t.root.Add("TM", v[0])
			t.root.Add("OT", fmt.Sprintf("%s fischer", v[1]))
		}
	case systemSimple:
		if v, ok := t.required(tc, ogs.FieldPerMove); ok {
			t.root.Add("TM", "0")
			t.root.Add("OT", fmt.Sprintf("%s simple", v[0]))
		}
	case systemCanadian:
		if v, ok := t.required(tc, ogs.FieldMainTime, ogs.FieldPeriodTime, ogs.FieldStonesPerPeriod); ok {
			t.root.Add("TM", v[0])
			t.root.Add("OT", fmt.Sprintf("%s/%s canadian", v[2], v[1]))
		}
	case systemAbsolute:
		if v, ok := t.required(tc, ogs.FieldTotalTime); ok {
			t.root.Add("TM", v[0])
		}
	case systemNone:
	default:
		t.warn("Unknown time control for game %s: %s", t.gameID, name)
	}

	switch speed := t.get(tc, ogs.FieldSpeed, false); {
	case ogs.IsSet(speed):
		t.extraInfo = append(t.extraInfo, ogs.Text(speed))
	case name == systemNone:
		t.extraInfo = append(t.extraInfo, systemNone)
	default:
		t.extraInfo = append(t.extraInfo, "unknown")
	}
}

// required reads every field, reporting each absent one. Partial data is not usable.
func (t *translation) required(obj gjson.Result, fields ...string) ([]string, bool) {
	values := make([]string, len(fields))
	complete := true
	for i, f := range fields {
		v := t.get(obj, f, true)
		if !ogs.IsSet(v) {
			complete = false
			continue
		}
		values[i] = ogs.Text(v)
	}
	return values, complete
}
