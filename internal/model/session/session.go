package session

// Session is one recorded VR rehabilitation exercise instance as it
// exists in the store. Rows are immutable after insert; there is no
// update or delete path.
type Session struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	SessionID       string `gorm:"column:session_id;not null" json:"session_id"`
	Smoothness      Metric `gorm:"type:real" json:"smoothness"`
	TimeScore       Metric `gorm:"column:time_score;type:real" json:"time_score"`
	FinalScore      Metric `gorm:"column:final_score;type:real" json:"final_score"`
	Duration        Metric `gorm:"type:real" json:"duration"`
	LeftSmoothness  Metric `gorm:"column:left_smoothness;type:real" json:"left_smoothness"`
	RightSmoothness Metric `gorm:"column:right_smoothness;type:real" json:"right_smoothness"`
	Date            string `gorm:"not null" json:"date"`
}

// TableName pins the table name regardless of GORM pluralization rules.
func (Session) TableName() string {
	return "sessions"
}

// Payload is a validated inbound session record. It only ever exists as
// the output of Validate; the numeric fields are guaranteed finite and
// the string fields non-empty.
type Payload struct {
	SessionID       string  `json:"session_id" validate:"required"`
	Smoothness      float64 `json:"smoothness"`
	TimeScore       float64 `json:"time_score"`
	FinalScore      float64 `json:"final_score"`
	Duration        float64 `json:"duration"`
	LeftSmoothness  float64 `json:"left_smoothness"`
	RightSmoothness float64 `json:"right_smoothness"`
	Date            string  `json:"date" validate:"required"`
}

// Row converts a validated payload into a storable row. The id is left
// zero for the store to assign.
func (p Payload) Row() Session {
	return Session{
		SessionID:       p.SessionID,
		Smoothness:      Metric(p.Smoothness),
		TimeScore:       Metric(p.TimeScore),
		FinalScore:      Metric(p.FinalScore),
		Duration:        Metric(p.Duration),
		LeftSmoothness:  Metric(p.LeftSmoothness),
		RightSmoothness: Metric(p.RightSmoothness),
		Date:            p.Date,
	}
}
