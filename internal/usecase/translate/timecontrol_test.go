package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightvector/ogstosgf/internal/usecase/translate"
)

func TestTimeControl(t *testing.T) {
	cases := []struct {
		name    string
		tc      string
		tm, ot  string
		gc      string
		warning string
	}{
		{
			name: "byoyomi",
			tc:   `{"system": "byoyomi", "main_time": 600, "period_time": 30, "periods": 5, "speed": "live"}`,
			tm:   "600", ot: "5x30 byo-yomi", gc: "live,unranked",
		},
		{
			name: "fischer in legacy field",
			tc:   `{"time_control": "fischer", "initial_time": 120, "time_increment": 10, "speed": "blitz"}`,
			tm:   "120", ot: "10 fischer", gc: "blitz,unranked",
		},
		{
			name: "simple",
			tc:   `{"system": "simple", "per_move": 30}`,
			tm:   "0", ot: "30 simple", gc: "unknown,unranked",
		},
		{
			name: "canadian",
			tc:   `{"system": "canadian", "main_time": 600, "period_time": 300, "stones_per_period": 25, "speed": "live"}`,
			tm:   "600", ot: "25/300 canadian", gc: "live,unranked",
		},
		{
			name: "absolute",
			tc:   `{"system": "absolute", "total_time": 900.5, "speed": "correspondence"}`,
			tm:   "900.5", gc: "correspondence,unranked",
		},
		{
			name: "none",
			tc:   `{"system": "none"}`,
			gc:   "none,unranked",
		},
		{
			name: "partial byoyomi is dropped",
			tc:   `{"system": "byoyomi", "main_time": 600, "period_time": 30}`,
			gc:   "unknown,unranked", warning: "JSON field not found for game 8: periods",
		},
		{
			name: "missing system",
			tc:   `{"main_time": 600}`,
			gc:   "unknown,unranked", warning: "JSON field not found for game 8: time_control",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			js := `{"game_id": 8, "ranked": false, "time_control": ` + tc.tc + `}`
			res, err := translate.NewTranslator(translate.DefaultOptions(), nil).TranslateBytes([]byte(js))
			require.NoError(t, err)
			root := res.Document.RootNode()

			tm, hasTM := root.Get("TM")
			if tc.tm == "" {
				assert.False(t, hasTM)
			} else {
				assert.Equal(t, []string{tc.tm}, tm)
			}
			ot, hasOT := root.Get("OT")
			if tc.ot == "" {
				assert.False(t, hasOT)
			} else {
				assert.Equal(t, []string{tc.ot}, ot)
			}
			gc, _ := root.Get("GC")
			assert.Equal(t, []string{tc.gc}, gc)
			if tc.warning != "" {
				assert.Contains(t, res.Warnings, tc.warning)
			}
		})
	}
}

func TestNoTimeControlStillEmitsRanking(t *testing.T) {
	res, err := translate.NewTranslator(translate.DefaultOptions(), nil).
		TranslateBytes([]byte(`{"game_id": 1, "ranked": true}`))
	require.NoError(t, err)
	gc, _ := res.Document.RootNode().Get("GC")
	assert.Equal(t, []string{"ranked"}, gc)
}
