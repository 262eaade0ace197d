package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMalformedDocument = errors.New("routine document is not a JSON object")
	ErrMalformedRecord   = errors.New("malformed routine record")
)

type RoutineItemRecord struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
	Time      string `json:"time"`
}

type RoutineRecord struct {
	Date  string              `json:"date"`
	Items []RoutineItemRecord `json:"items"`
}

func (i RoutineItem) Record() RoutineItemRecord {
	return RoutineItemRecord{Task: i.Task, Completed: i.Completed, Time: i.Time}
}

func RoutineItemFromRecord(rec RoutineItemRecord) (RoutineItem, error) {
	return NewRoutineItem(rec.Task, rec.Completed, rec.Time)
}

func (r *DailyRoutine) Record() RoutineRecord {
	items := make([]RoutineItemRecord, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item.Record())
	}
	return RoutineRecord{Date: r.Key(), Items: items}
}

func DailyRoutineFromRecord(rec RoutineRecord) (*DailyRoutine, error) {
	routine, err := ParseDailyRoutine(rec.Date)
	if err != nil {
		return nil, err
	}
	for _, ir := range rec.Items {
		item, err := RoutineItemFromRecord(ir)
		if err != nil {
			return nil, err
		}
		if err := routine.AddItem(item); err != nil {
			return nil, err
		}
	}
	return routine, nil
}

// Wire shapes with pointer fields so that absent keys can be told apart from zero values.
type itemWire struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
	Time      *string `json:"time"`
}

type routineWire struct {
	Date  *string     `json:"date"`
	Items *[]itemWire `json:"items"`
}

func (w routineWire) record() (RoutineRecord, error) {
	if w.Date == nil {
		return RoutineRecord{}, fmt.Errorf("%w: missing date", ErrMalformedRecord)
	}
	if w.Items == nil {
		return RoutineRecord{}, fmt.Errorf("%w: missing items", ErrMalformedRecord)
	}
	rec := RoutineRecord{Date: *w.Date, Items: make([]RoutineItemRecord, 0, len(*w.Items))}
	for idx, iw := range *w.Items {
		if iw.Task == nil || iw.Completed == nil {
			return RoutineRecord{}, fmt.Errorf("%w: item %d lacks task or completed", ErrMalformedRecord, idx)
		}
		ir := RoutineItemRecord{Task: *iw.Task, Completed: *iw.Completed}
		if iw.Time != nil {
			ir.Time = *iw.Time
		}
		rec.Items = append(rec.Items, ir)
	}
	return rec, nil
}

// EncodeRoutines renders the whole mapping as one document keyed by ISO date.
func EncodeRoutines(routines RoutineSet) ([]byte, error) {
	if err := routines.Validate(); err != nil {
		return nil, err
	}
	doc := make(map[string]RoutineRecord, len(routines))
	for key, r := range routines {
		doc[key] = r.Record()
	}
	return json.MarshalIndent(doc, "", "    ")
}

// DecodeRoutines rebuilds a mapping from a document. Entries that fail validation
// are reported to skip and left out; only an unreadable top level fails the call.
func DecodeRoutines(data []byte, skip func(key string, err error)) (RoutineSet, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if skip == nil {
		skip = func(string, error) {}
	}

	routines := make(RoutineSet, len(raw))
	for key, msg := range raw {
		var w routineWire
		if err := json.Unmarshal(msg, &w); err != nil {
			skip(key, fmt.Errorf("%w: %v", ErrMalformedRecord, err))
			continue
		}
		rec, err := w.record()
		if err != nil {
			skip(key, err)
			continue
		}
		routine, err := DailyRoutineFromRecord(rec)
		if err != nil {
			skip(key, err)
			continue
		}
		if routine.Key() != key {
			skip(key, fmt.Errorf("%w: key does not match date %s", ErrMalformedRecord, routine.Key()))
			continue
		}
		routines[key] = routine
	}
	return routines, nil
}
