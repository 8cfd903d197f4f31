package responses

import "testing"

func TestExchangeResponseErrStatus(t *testing.T) {
	var r ExchangeResponse
	if err := r.UnmarshalJSON([]byte(`{"status":"err","response":"invalid nonce"}`)); err != nil {
		t.Fatal(err)
	}
	if r.Status != "err" || r.Error != "invalid nonce" {
		t.Fatalf("got status=%q error=%q", r.Status, r.Error)
	}
}

func TestOrderStatusesMixedOutcomes(t *testing.T) {
	var r ExchangeResponse
	body := `{"status":"ok","response":{"type":"order","data":{"statuses":[` +
		`"success",` +
		`{"resting":{"oid":12345}},` +
		`{"filled":{"totalSz":"0.1","avgPx":"50000","oid":12346}},` +
		`{"error":"insufficient margin"}` +
		`]}}}`
	if err := r.UnmarshalJSON([]byte(body)); err != nil {
		t.Fatal(err)
	}
	statuses, err := r.OrderStatuses()
	if err != nil {
		t.Fatal(err)
	}
	if len(statuses) != 4 {
		t.Fatalf("got %d statuses, want 4", len(statuses))
	}
	if statuses[0].Kind != StatusSuccess {
		t.Fatalf("statuses[0].Kind = %v, want StatusSuccess", statuses[0].Kind)
	}
	if statuses[1].Kind != StatusResting || statuses[1].Resting.Oid != 12345 {
		t.Fatalf("statuses[1] = %+v", statuses[1])
	}
	if statuses[2].Kind != StatusFilled || statuses[2].Filled.Oid != 12346 || statuses[2].Filled.AvgPx != "50000" {
		t.Fatalf("statuses[2] = %+v", statuses[2])
	}
	if statuses[3].Kind != StatusError || statuses[3].Error != "insufficient margin" {
		t.Fatalf("statuses[3] = %+v", statuses[3])
	}
}

func TestOrderStatusRestingWithCloid(t *testing.T) {
	var s OrderStatus
	if err := s.UnmarshalJSON([]byte(`{"resting":{"oid":1,"cloid":"0x00000000000000000000000000000001"}}`)); err != nil {
		t.Fatal(err)
	}
	if s.Kind != StatusResting || s.Resting.Cloid != "0x00000000000000000000000000000001" {
		t.Fatalf("got %+v", s)
	}
}

func TestOrderStatusRejectsUnknownString(t *testing.T) {
	var s OrderStatus
	if err := s.UnmarshalJSON([]byte(`"pending"`)); err == nil {
		t.Fatal("expected error for unrecognized status string")
	}
}
