package pricenormrpc

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"pricenorm"
	pricenormmsgpack "pricenorm/msgpack"
)

func newTestProcessor(t *testing.T) *ServerProcessor {
	t.Helper()
	engine := pricenorm.NewEngine(pricenorm.NewUnitResolver(pricenorm.DefaultRules()))
	return NewServerProcessor(engine, pricenorm.DefaultShelfLifeConfig())
}

func requestPkt(t *testing.T, function string, arg any) *Packet {
	t.Helper()
	argBytes, err := msgpack.Marshal(arg)
	if err != nil {
		t.Fatalf("marshal arg: %v", err)
	}
	return &Packet{
		UUID: "req-1",
		Body: map[string][]byte{
			"function": []byte(function),
			"arg":      argBytes,
		},
	}
}

func TestPacketBufferFeedWholeAndPartial(t *testing.T) {
	pkt := &Packet{UUID: "abc", Body: map[string][]byte{"function": []byte("x")}}
	wire, err := Marshal(pkt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var pb PacketBuffer

	// two packets arriving in one chunk
	got, err := pb.Feed(append(append([]byte{}, wire...), wire...))
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 packets, got %d", len(got))
	}
	if got[0].UUID != "abc" || string(got[0].Body["function"]) != "x" {
		t.Fatalf("unexpected packet: %+v", got[0])
	}

	// one packet split across two feeds
	half := len(wire) / 2
	got, err = pb.Feed(wire[:half])
	if err != nil {
		t.Fatalf("Feed partial: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("partial data should yield nothing, got %d", len(got))
	}
	got, err = pb.Feed(wire[half:])
	if err != nil {
		t.Fatalf("Feed rest: %v", err)
	}
	if len(got) != 1 || got[0].UUID != "abc" {
		t.Fatalf("expected the completed packet, got %+v", got)
	}
}

func TestProcessPktProtocolErrors(t *testing.T) {
	p := newTestProcessor(t)

	resp := p.ProcessPkt(&Packet{UUID: "r", Body: map[string][]byte{}})
	if resp.Code != -201 {
		t.Fatalf("missing function: expected -201, got %d", resp.Code)
	}
	resp = p.ProcessPkt(&Packet{UUID: "r", Body: map[string][]byte{"function": []byte("Nope")}})
	if resp.Code != -202 {
		t.Fatalf("unknown function: expected -202, got %d", resp.Code)
	}
	resp = p.ProcessPkt(&Packet{UUID: "r", Body: map[string][]byte{"function": []byte("ConvertAmount")}})
	if resp.Code != -204 {
		t.Fatalf("missing arg: expected -204, got %d", resp.Code)
	}
	if resp.UUID != "r" {
		t.Fatalf("response should mirror the request UUID, got %q", resp.UUID)
	}
}

func TestProcessPktValidateAndConvert(t *testing.T) {
	p := newTestProcessor(t)
	pkt := requestPkt(t, "ValidateAndConvert", pricenormmsgpack.ConversionRequest{
		Amount: 1, Unit: "kg", Dimension: "mass",
	})
	resp := p.ProcessPkt(pkt)
	if resp.Code != 0 {
		t.Fatalf("expected success, got code %d: %s", resp.Code, resp.Body["error"])
	}
	var res pricenormmsgpack.NormalizationResult
	if err := msgpack.Unmarshal(resp.Body["result"], &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !res.Valid || res.CanonicalAmount != 1000 || res.CanonicalUnit != "g" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestProcessPktConvertAmount(t *testing.T) {
	p := newTestProcessor(t)
	pkt := requestPkt(t, "ConvertAmount", pricenormmsgpack.ConvertAmountRequest{
		Amount: 2, FromUnit: "l", ToUnit: "ml",
	})
	resp := p.ProcessPkt(pkt)
	if resp.Code != 0 {
		t.Fatalf("expected success, got code %d", resp.Code)
	}
	var res pricenormmsgpack.ConvertAmountResult
	if err := msgpack.Unmarshal(resp.Body["result"], &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !res.OK || res.Amount != 2000 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestProcessPktGetCanonicalUnitUnknownDimension(t *testing.T) {
	p := newTestProcessor(t)
	pkt := requestPkt(t, "GetCanonicalUnit", pricenormmsgpack.CanonicalUnitRequest{Dimension: "weight"})
	resp := p.ProcessPkt(pkt)
	if resp.Code != -206 {
		t.Fatalf("unknown dimension: expected -206, got %d", resp.Code)
	}
	if len(resp.Body["error"]) == 0 {
		t.Fatalf("error responses carry a message")
	}
}

func TestProcessPktBatchConvert(t *testing.T) {
	p := newTestProcessor(t)
	pkt := requestPkt(t, "BatchConvertToCanonical", pricenormmsgpack.BatchConversionRequest{
		Requests: []pricenormmsgpack.ConversionRequest{
			{ID: "a", Amount: 1, Unit: "kg", Dimension: "mass"},
			{ID: "b", Amount: 1, Unit: "xyz", Dimension: "mass"},
		},
	})
	resp := p.ProcessPkt(pkt)
	if resp.Code != 0 {
		t.Fatalf("expected success, got code %d", resp.Code)
	}
	var res pricenormmsgpack.BatchConversionResult
	if err := msgpack.Unmarshal(resp.Body["result"], &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(res.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res.Results))
	}
	if !res.Results[0].Result.Valid || res.Results[1].Result.Valid {
		t.Fatalf("unexpected batch outcome: %+v", res.Results)
	}
}

func TestProcessPktAnalyzeShelfLife(t *testing.T) {
	p := newTestProcessor(t)
	pkt := requestPkt(t, "AnalyzeShelfLife", pricenormmsgpack.ShelfLifeRequest{
		Item: pricenormmsgpack.InventoryItem{
			ID:                 "item-lettuce",
			Name:               "Lettuce",
			CanonicalDimension: "count",
			CanonicalUnit:      "unit",
			ShelfLifeSensitive: true,
		},
		Quantity: 15,
	})
	resp := p.ProcessPkt(pkt)
	if resp.Code != 0 {
		t.Fatalf("expected success, got code %d", resp.Code)
	}
	var res pricenormmsgpack.ShelfLifeWarning
	if err := msgpack.Unmarshal(resp.Body["result"], &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if !res.ShouldShowWarning || res.Severity != "high" {
		t.Fatalf("expected a high warning, got %+v", res)
	}
}
