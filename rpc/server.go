package pricenormrpc

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"pricenorm"
	pricenormmsgpack "pricenorm/msgpack"
)

var ServerFuncs = []string{
	"GetCanonicalUnit",
	"ConvertAmount",
	"ValidateAndConvert",
	"BatchConvertToCanonical",
	"AnalyzeShelfLife",
}

var (
	ErrReqHasNoFunc = errors.New("request names no function")
	ErrNoSuchFunc   = errors.New("no such function")
	ErrReqHasNoArg  = errors.New("request has no arg")
)

func StrsContains(strs []string, searchVal string) bool {
	for i := range strs {
		if strs[i] == searchVal {
			return true
		}
	}
	return false
}

// ServerProcessor dispatches decoded packets onto an engine. Stateless per
// packet; safe for concurrent use.
type ServerProcessor struct {
	Engine    *pricenorm.Engine
	ShelfLife pricenorm.ShelfLifeConfig
}

func NewServerProcessor(engine *pricenorm.Engine, shelfLife pricenorm.ShelfLifeConfig) *ServerProcessor {
	return &ServerProcessor{Engine: engine, ShelfLife: shelfLife}
}

func respPkt(reqUUID string, code int32, body map[string][]byte) *Packet {
	if body == nil {
		body = map[string][]byte{}
	}
	return &Packet{UUID: reqUUID, Code: code, Body: body}
}

func respErrPkt(reqUUID string, code int32, err error) *Packet {
	return respPkt(reqUUID, code, map[string][]byte{"error": []byte(err.Error())})
}

// ProcessPkt handles one request packet and always produces a response,
// mirroring the request UUID so clients can correlate.
func (p *ServerProcessor) ProcessPkt(pkt *Packet) *Packet {
	reqUUID := pkt.UUID
	if reqUUID == "" {
		reqUUID = uuid.New().String()
	}

	funcBytes, ok := pkt.Body["function"]
	if !ok {
		return respErrPkt(reqUUID, -201, ErrReqHasNoFunc)
	}
	funcStr := string(funcBytes)
	if !StrsContains(ServerFuncs, funcStr) {
		return respErrPkt(reqUUID, -202, ErrNoSuchFunc)
	}

	argBytes, argOk := pkt.Body["arg"]
	if argOk && len(argBytes) == 0 {
		argOk = false
	}
	if !argOk {
		return respErrPkt(reqUUID, -204, ErrReqHasNoArg)
	}

	result, err := p.execFunc(funcStr, argBytes)
	if err != nil {
		slog.Warn("rpc call failed", "function", funcStr, "err", err)
		return respErrPkt(reqUUID, -206, err)
	}
	resultBytes, err := msgpack.Marshal(result)
	if err != nil {
		return respErrPkt(reqUUID, -207, err)
	}
	return respPkt(reqUUID, 0, map[string][]byte{"result": resultBytes})
}

func (p *ServerProcessor) execFunc(funcStr string, argBytes []byte) (any, error) {
	switch funcStr {
	case "GetCanonicalUnit":
		var arg pricenormmsgpack.CanonicalUnitRequest
		if err := msgpack.Unmarshal(argBytes, &arg); err != nil {
			return nil, err
		}
		unit, err := p.Engine.Resolver().CanonicalUnit(pricenorm.Dimension(arg.Dimension))
		if err != nil {
			return nil, err
		}
		return pricenormmsgpack.CanonicalUnitResult{Unit: unit}, nil

	case "ConvertAmount":
		var arg pricenormmsgpack.ConvertAmountRequest
		if err := msgpack.Unmarshal(argBytes, &arg); err != nil {
			return nil, err
		}
		amount, ok := p.Engine.ConvertAmount(arg.Amount, arg.FromUnit, arg.ToUnit)
		return pricenormmsgpack.ConvertAmountResult{OK: ok, Amount: amount}, nil

	case "ValidateAndConvert":
		var arg pricenormmsgpack.ConversionRequest
		if err := msgpack.Unmarshal(argBytes, &arg); err != nil {
			return nil, err
		}
		res := p.Engine.ValidateAndConvert(arg.Amount, arg.Unit, pricenorm.Dimension(arg.Dimension))
		return pricenormmsgpack.NewNormalizationResult(res), nil

	case "BatchConvertToCanonical":
		var arg pricenormmsgpack.BatchConversionRequest
		if err := msgpack.Unmarshal(argBytes, &arg); err != nil {
			return nil, err
		}
		reqs := make([]pricenorm.ConversionRequest, 0, len(arg.Requests))
		for _, r := range arg.Requests {
			reqs = append(reqs, pricenormmsgpack.ToCoreRequest(r))
		}
		results := p.Engine.BatchConvertToCanonical(reqs)
		out := pricenormmsgpack.BatchConversionResult{}
		for _, res := range results {
			out.Results = append(out.Results, pricenormmsgpack.NewConversionResult(res))
		}
		return out, nil

	case "AnalyzeShelfLife":
		var arg pricenormmsgpack.ShelfLifeRequest
		if err := msgpack.Unmarshal(argBytes, &arg); err != nil {
			return nil, err
		}
		res := pricenorm.AnalyzeShelfLifeWarning(pricenormmsgpack.ToCoreItem(arg.Item), arg.Quantity, p.ShelfLife)
		return pricenormmsgpack.NewShelfLifeWarning(res), nil
	}
	return nil, ErrNoSuchFunc
}
