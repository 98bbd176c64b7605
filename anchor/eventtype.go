// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Agritrace Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package anchor

import (
	"fmt"
	"strings"

	"github.com/agritrace/anchord/fault"
)

// EventType - tag for the kind of supply-chain event being anchored
type EventType uint64

// possible event types
const (
	NoEvent EventType = iota // this must be the first value
	Commission
	Transform
	Ship
	Receive
	Aggregate
	maximumEventType // this must be the last value
)

// internal conversion
func eventTypeToString(e EventType) (string, error) {
	switch e {
	case Commission:
		return "commission", nil
	case Transform:
		return "transform", nil
	case Ship:
		return "ship", nil
	case Receive:
		return "receive", nil
	case Aggregate:
		return "aggregate", nil
	default:
		return "", fault.ErrInvalidEventType
	}
}

// EventTypeFromString - convert a tag string to an event type
func EventTypeFromString(in string) (EventType, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "commission":
		return Commission, nil
	case "transform":
		return Transform, nil
	case "ship":
		return Ship, nil
	case "receive":
		return Receive, nil
	case "aggregate":
		return Aggregate, nil
	default:
		return NoEvent, fault.ErrInvalidEventType
	}
}

// IsValid - check the enumeration is in range
func (eventType EventType) IsValid() bool {
	return eventType > NoEvent && eventType < maximumEventType
}

// String - convert an event type to its tag for use by the fmt package (for %s)
func (eventType EventType) String() string {
	s, err := eventTypeToString(eventType)
	if nil != err {
		return fmt.Sprintf("*invalid event type: %d*", uint64(eventType))
	}
	return s
}

// MarshalText - convert event type to text
func (eventType EventType) MarshalText() ([]byte, error) {
	s, err := eventTypeToString(eventType)
	if nil != err {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText - convert text to an event type
func (eventType *EventType) UnmarshalText(s []byte) error {
	e, err := EventTypeFromString(string(s))
	if nil != err {
		return err
	}
	*eventType = e
	return nil
}
