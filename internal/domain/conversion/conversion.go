package conversion

import "time"

// Conversion - результат обработки одного файла, его получают кэш и архив
type Conversion struct {
	RunID       string     `json:"run_id" bson:"run_id"`
	GameID      string     `json:"game_id" bson:"game_id"`
	SourcePath  string     `json:"source_path,omitempty" bson:"source_path,omitempty"`
	OutputPath  string     `json:"output_path,omitempty" bson:"output_path,omitempty"`
	SGF         string     `json:"sgf" bson:"sgf"`
	Succeeded   bool       `json:"succeeded" bson:"succeeded"`
	Warnings    []string   `json:"warnings,omitempty" bson:"warnings,omitempty"`
	BlackName   string     `json:"black_name,omitempty" bson:"black_name,omitempty"`
	WhiteName   string     `json:"white_name,omitempty" bson:"white_name,omitempty"`
	Date        *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Original    bool       `json:"original" bson:"original"`
	ConvertedAt time.Time  `json:"converted_at" bson:"converted_at"`
}
