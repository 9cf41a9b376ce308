package code

import "time"

// Record maps a unique code to its message. Records are never mutated after
// insertion; the store assigns id and createdAt.
type Record struct {
	id        int64
	code      Code
	message   Message
	createdAt time.Time
}

func NewRecord(rawCode, rawMessage string) (*Record, error) {
	c, err := NewCode(rawCode)
	if err != nil {
		return nil, err
	}
	m, err := NewMessage(rawMessage)
	if err != nil {
		return nil, err
	}
	return &Record{code: c, message: m}, nil
}

func ReconstructRecord(id int64, c Code, m Message, createdAt time.Time) *Record {
	return &Record{id: id, code: c, message: m, createdAt: createdAt}
}

func (r *Record) ID() int64            { return r.id }
func (r *Record) Code() Code           { return r.code }
func (r *Record) Message() Message     { return r.message }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
