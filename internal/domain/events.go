package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EventKind identifies a life event.
type EventKind string

const (
	EventMarriage       EventKind = "marriage"
	EventChildBirth     EventKind = "child_birth"
	EventHousePurchase  EventKind = "house_purchase"
	EventChildEducation EventKind = "child_education"
	EventCarPurchase    EventKind = "car_purchase"
	EventFuneral        EventKind = "funeral"
)

var eventLabels = map[EventKind]string{
	EventMarriage:       "Marriage",
	EventChildBirth:     "Child Birth",
	EventHousePurchase:  "House Purchase",
	EventChildEducation: "Child Education",
	EventCarPurchase:    "Car Purchase",
	EventFuneral:        "Funeral",
}

// EventKinds returns every known kind in schedule order.
func EventKinds() []EventKind {
	return []EventKind{EventMarriage, EventChildBirth, EventHousePurchase, EventChildEducation, EventCarPurchase, EventFuneral}
}

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	_, ok := eventLabels[k]
	return ok
}

// Label returns the annotation shown next to the event on charts.
func (k EventKind) Label() string {
	if l, ok := eventLabels[k]; ok {
		return l
	}
	return string(k)
}

// ParseEventKind accepts a kind name or its label ("car_purchase", "Car Purchase").
func ParseEventKind(s string) (EventKind, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.ReplaceAll(n, " ", "_")
	n = strings.ReplaceAll(n, "-", "_")
	if k := EventKind(n); k.Valid() {
		return k, nil
	}
	return "", fmt.Errorf("unknown event kind %q", s)
}

// LifeEvent schedules one event at an age.
type LifeEvent struct {
	Age  int       `yaml:"age" json:"age"`
	Kind EventKind `yaml:"kind" json:"kind"`
}

// Schedule is the ordered list of life events for a scenario. A valid
// schedule holds at most one event per age.
type Schedule []LifeEvent

// At returns the event scheduled at age. When the schedule is invalid and
// holds several events for one age, the first one wins.
func (s Schedule) At(age int) (LifeEvent, bool) {
	for _, e := range s {
		if e.Age == age {
			return e, true
		}
	}
	return LifeEvent{}, false
}

// DefaultSchedule returns the default life plan. Education and car purchase
// share age 45, which validation reports as a conflict.
func DefaultSchedule() Schedule {
	return Schedule{
		{Age: 30, Kind: EventMarriage},
		{Age: 32, Kind: EventChildBirth},
		{Age: 40, Kind: EventHousePurchase},
		{Age: 45, Kind: EventChildEducation},
		{Age: 45, Kind: EventCarPurchase},
		{Age: 50, Kind: EventFuneral},
	}
}

// EventCosts are the one-time costs charged in the year an event happens.
// House doubles as the assessed purchase price for property tax.
type EventCosts struct {
	ChildBirth decimal.Decimal `yaml:"child_birth" json:"child_birth"`
	House      decimal.Decimal `yaml:"house" json:"house"`
	Education  decimal.Decimal `yaml:"education" json:"education"`
	Car        decimal.Decimal `yaml:"car" json:"car"`
	Funeral    decimal.Decimal `yaml:"funeral" json:"funeral"`
}

// DefaultEventCosts returns the default one-time costs.
func DefaultEventCosts() EventCosts {
	return EventCosts{
		ChildBirth: decimal.NewFromInt(300000),
		House:      decimal.NewFromInt(30000000),
		Education:  decimal.NewFromInt(2000000),
		Car:        decimal.NewFromInt(3000000),
		Funeral:    decimal.NewFromInt(1000000),
	}
}

// CostOf returns the direct one-time cost of an event kind. Marriage has none.
func (c EventCosts) CostOf(k EventKind) decimal.Decimal {
	switch k {
	case EventChildBirth:
		return c.ChildBirth
	case EventHousePurchase:
		return c.House
	case EventChildEducation:
		return c.Education
	case EventCarPurchase:
		return c.Car
	case EventFuneral:
		return c.Funeral
	default:
		return decimal.Zero
	}
}
