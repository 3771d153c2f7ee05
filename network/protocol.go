package network

import (
	"encoding/json"
	"math"
)

// FrameStatus is the only frame type pushed to clients
const FrameStatus = "status"

// StatusFrame is the JSON status push
type StatusFrame struct {
	Type         string  `json:"type"`
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"` // LOBBY or PLAYING
	TotalScore   int64   `json:"totalScore"`
	CurrentScore int64   `json:"currentScore"`
	CurrentTime  float64 `json:"currentTime"` // Seconds alive
}

// Encode marshals the frame, stamping its type
func (f StatusFrame) Encode() ([]byte, error) {
	f.Type = FrameStatus
	// Whole tenths keep frames stable for consumers
	f.CurrentTime = math.Floor(f.CurrentTime*10) / 10
	return json.Marshal(f)
}

// DecodeStatus parses a status frame
func DecodeStatus(data []byte) (StatusFrame, error) {
	var f StatusFrame
	err := json.Unmarshal(data, &f)
	return f, err
}
