package queryspec

import (
	"reflect"
	"testing"

	"github.com/queryspec/queryspec-go/filter"
)

func TestRequestWireRoundTrip(t *testing.T) {
	req := filter.NewOrRequest(
		filter.Equals("status", "ACTIVE"),
		filter.NewCriterion("age", filter.OpGreaterThan, int64(18)),
	)
	req.UseAndOperatorForGroups = false
	req.AddFilterGroup(filter.NewOrGroup(
		filter.Like("firstName", "John"),
		filter.In("department", "IT", "HR"),
	))

	data, err := EncodeRequest(req)
	if err != nil {
		t.Fatalf("EncodeRequest failed: %v", err)
	}

	decoded, err := DecodeRequest(data)
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}

	// Integer values round-trip as int64; the request above only uses
	// int64 and string values so deep equality holds.
	if !reflect.DeepEqual(req, decoded) {
		t.Errorf("round trip mismatch:\n sent %+v\n got  %+v", req, decoded)
	}
}

func TestDecodeRequestRejectsGarbage(t *testing.T) {
	if _, err := DecodeRequest([]byte("not a compressed payload")); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestEncodeRequestCompactsRepetitivePayloads(t *testing.T) {
	req := filter.NewRequest()
	for range 200 {
		req.AddFilter(filter.Equals("status", "ACTIVE"))
	}

	wire, err := EncodeRequest(req)
	if err != nil {
		t.Fatalf("EncodeRequest failed: %v", err)
	}
	plain, err := filter.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if len(wire) >= len(plain) {
		t.Errorf("wire form (%d bytes) should be smaller than JSON (%d bytes)", len(wire), len(plain))
	}
}
