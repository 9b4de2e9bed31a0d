// Package progress models the learner's persistent ledger: streak,
// per-day word records, and lifetime totals. UserProgress is treated as
// an immutable value; every update returns a new copy so a failed save
// can never leave a half-mutated ledger behind.
package progress

import (
	"time"

	"vocadrill/internal/vocab"
)

// DayFormat is the layout for ledger date keys, local time.
const DayFormat = "2006-01-02"

// DayString formats t as a ledger date key.
func DayString(t time.Time) string {
	return t.Format(DayFormat)
}

// DailyRecord is one day's batch of words. At most one record exists
// per date and only the current day's record is ever rewritten.
type DailyRecord struct {
	Date      string       `json:"date"`
	Words     []vocab.Word `json:"words"`
	Completed bool         `json:"completed"`
	Score     *int         `json:"score,omitempty"`
}

// UserProgress is the full learner ledger.
type UserProgress struct {
	Streak            int           `json:"streak"`
	LastLoginDate     string        `json:"lastLoginDate"`
	History           []DailyRecord `json:"history"`
	TotalWordsLearned int           `json:"totalWordsLearned"`
}

// Initial returns the zero-state ledger for a brand new learner.
func Initial() UserProgress {
	return UserProgress{History: []DailyRecord{}}
}

// RecordFor returns the record for the given date, if one exists.
func (p UserProgress) RecordFor(date string) (DailyRecord, bool) {
	for _, r := range p.History {
		if r.Date == date {
			return r, true
		}
	}
	return DailyRecord{}, false
}

// CompletedOn reports whether the record for date exists and is marked
// completed.
func (p UserProgress) CompletedOn(date string) bool {
	r, ok := p.RecordFor(date)
	return ok && r.Completed
}

// SeenWords returns every word text across the whole history, oldest
// day first, preserving within-day order.
func (p UserProgress) SeenWords() []string {
	var out []string
	for _, r := range p.History {
		out = append(out, vocab.Texts(r.Words)...)
	}
	return out
}

// AllWords flattens the history into a single word pool, oldest day
// first. The weekly test samples from this pool.
func (p UserProgress) AllWords() []vocab.Word {
	var out []vocab.Word
	for _, r := range p.History {
		out = append(out, r.Words...)
	}
	return out
}

// WithRecord returns a copy of the ledger with rec appended to the
// history. The caller guarantees no record exists for rec.Date yet.
func (p UserProgress) WithRecord(rec DailyRecord) UserProgress {
	next := p
	next.History = make([]DailyRecord, 0, len(p.History)+1)
	next.History = append(next.History, p.History...)
	next.History = append(next.History, rec)
	return next
}

// WithCompletedDay returns a copy of the ledger updated for a finished
// daily session on the given date: the day's record gets the final word
// list (skips may have replaced entries) and completed=true, the streak
// is recomputed, lastLoginDate moves to date, and the lifetime total
// grows by the session's word count.
func (p UserProgress) WithCompletedDay(date string, words []vocab.Word) UserProgress {
	next := p
	next.History = make([]DailyRecord, len(p.History))
	copy(next.History, p.History)
	for i, r := range next.History {
		if r.Date == date {
			r.Words = words
			r.Completed = true
			next.History[i] = r
		}
	}
	next.Streak = NextStreak(p.Streak, p.LastLoginDate, date)
	next.LastLoginDate = date
	next.TotalWordsLearned = p.TotalWordsLearned + len(words)
	return next
}
