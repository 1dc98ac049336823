package main

import (
	"log/slog"
	"net"
	"os"

	"pricenorm"
	pricenormrpc "pricenorm/rpc"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	addr := getenv("RPC_ADDR", ":7070")

	engine := pricenorm.NewEngine(pricenorm.NewUnitResolver(pricenorm.DefaultRules()))
	processor := pricenormrpc.NewServerProcessor(engine, pricenorm.DefaultShelfLifeConfig())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("listen failed", "addr", addr, "err", err)
		os.Exit(1)
	}
	slog.Info("rpc server listening", "addr", addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			slog.Error("accept failed", "err", err)
			continue
		}
		go serve(conn, processor)
	}
}

func serve(conn net.Conn, processor *pricenormrpc.ServerProcessor) {
	defer conn.Close()

	var pb pricenormrpc.PacketBuffer
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		pkts, err := pb.Feed(buf[:n])
		if err != nil {
			slog.Warn("dropping connection on malformed stream", "err", err)
			return
		}
		for _, pkt := range pkts {
			resp := processor.ProcessPkt(pkt)
			wire, err := pricenormrpc.Marshal(resp)
			if err != nil {
				slog.Warn("marshal response failed", "err", err)
				continue
			}
			if _, err := conn.Write(wire); err != nil {
				return
			}
		}
	}
}
