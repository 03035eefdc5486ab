package models

import "time"

type AudioSubmission struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	EncodedAudio []byte    `db:"encoded_audio"` // canonical 16-bit PCM WAV
	ContentHash  string    `db:"content_hash"`  // sha256 hex, unique
	Transcript   *string   `db:"transcript"`
	Description  *string   `db:"description"`
	SampleRate   int       `db:"sample_rate"`
	CreatedAt    time.Time `db:"created_at"`
}
