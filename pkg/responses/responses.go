// Package responses decodes the narrow status surface the exchange
// returns for a signed request: whether the request was accepted, and
// per-order outcome for batch order/cancel/modify actions. It is a
// read-only boundary type — the signing core never produces these, it
// only consumes the signatures/bodies that pkg/signing builds.
package responses

import (
	"encoding/json"
	"fmt"
)

// ExchangeResponse is the top-level envelope every exchange reply
// carries: Status is "ok" or "err". When Status is not "ok" and the
// response is a plain string, Error holds that text and Data is empty;
// any other non-"ok" response is kept raw in Data. When Status is "ok",
// Data holds the action-specific payload (order statuses for order
// actions, or nothing for actions with no per-item outcome).
type ExchangeResponse struct {
	Status string          `json:"status"`
	Error  string          `json:"-"`
	Data   json.RawMessage `json:"-"`
}

type rawExchangeResponse struct {
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response"`
}

// UnmarshalJSON decodes the exchange's {"status":...,"response":...}
// envelope, where response is either a plain error string (when
// status == "err") or {"type":"order",...,"data":{"statuses":[...]}}.
func (r *ExchangeResponse) UnmarshalJSON(data []byte) error {
	var raw rawExchangeResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("responses: decode envelope: %w", err)
	}
	r.Status = raw.Status
	if raw.Status != "ok" {
		var errText string
		if err := json.Unmarshal(raw.Response, &errText); err == nil {
			r.Error = errText
			return nil
		}
		r.Data = raw.Response
		return nil
	}
	r.Data = raw.Response
	return nil
}

// OrderStatuses extracts the per-order statuses array from an "ok"
// order/cancel/modify response. It returns an error if the response
// shape doesn't carry a statuses array (e.g. a "noop" or
// "scheduleCancel" response, which has no per-item outcome).
func (r ExchangeResponse) OrderStatuses() ([]OrderStatus, error) {
	var wrapped struct {
		Type string `json:"type"`
		Data struct {
			Statuses []OrderStatus `json:"statuses"`
		} `json:"data"`
	}
	if err := json.Unmarshal(r.Data, &wrapped); err != nil {
		return nil, fmt.Errorf("responses: decode order statuses: %w", err)
	}
	if wrapped.Data.Statuses == nil {
		return nil, fmt.Errorf("responses: response carries no statuses array")
	}
	return wrapped.Data.Statuses, nil
}

// StatusKind discriminates the four shapes a single order's status
// entry can take.
type StatusKind int

const (
	// StatusSuccess is the bare string "success": accepted with no
	// immediate resting/fill outcome yet known (e.g. a cancel ack).
	StatusSuccess StatusKind = iota
	// StatusResting means the order is now on the book.
	StatusResting
	// StatusFilled means the order filled immediately, in whole or
	// part.
	StatusFilled
	// StatusError means the exchange rejected this specific order;
	// other orders in the same batch may still have succeeded.
	StatusError
)

// Resting is the payload of a {"resting":{...}} status entry.
type Resting struct {
	Oid   uint64 `json:"oid"`
	Cloid string `json:"cloid,omitempty"`
}

// Filled is the payload of a {"filled":{...}} status entry.
type Filled struct {
	TotalSz string `json:"totalSz"`
	AvgPx   string `json:"avgPx"`
	Oid     uint64 `json:"oid"`
}

// OrderStatus is one element of a batch response's statuses array. Its
// Kind selects which of Resting/Filled/Error is populated; for
// StatusSuccess none of them are.
type OrderStatus struct {
	Kind    StatusKind
	Resting Resting
	Filled  Filled
	Error   string
}

// UnmarshalJSON decodes whichever of the four status shapes is
// present: the bare string "success", or an object with exactly one
// of the "resting", "filled", "error" keys.
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString != "success" {
			return fmt.Errorf("responses: unexpected order status string %q", asString)
		}
		s.Kind = StatusSuccess
		return nil
	}

	var asObject struct {
		Resting *Resting `json:"resting"`
		Filled  *Filled  `json:"filled"`
		Error   *string  `json:"error"`
	}
	if err := json.Unmarshal(data, &asObject); err != nil {
		return fmt.Errorf("responses: decode order status: %w", err)
	}
	switch {
	case asObject.Resting != nil:
		s.Kind = StatusResting
		s.Resting = *asObject.Resting
	case asObject.Filled != nil:
		s.Kind = StatusFilled
		s.Filled = *asObject.Filled
	case asObject.Error != nil:
		s.Kind = StatusError
		s.Error = *asObject.Error
	default:
		return fmt.Errorf("responses: order status object has none of resting/filled/error")
	}
	return nil
}
