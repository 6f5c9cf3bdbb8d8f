package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	hookrpc "offlinewins/internal/modules/hook/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// server acknowledges every event and, when OFFLINEWINS_HOOK_LOG is set,
// appends it to that file as one JSON line.
type server struct {
	logPath string
}

func (s *server) GetMetadata(_ context.Context, _ *hookrpc.Empty) (*hookrpc.Metadata, error) {
	return &hookrpc.Metadata{
		Name:    "reference",
		Version: "1.0.0",
		Events:  []string{"session.started", "session.ended", "session.expired", "goal.met"},
	}, nil
}

func (s *server) Notify(_ context.Context, in *hookrpc.Event) (*hookrpc.Ack, error) {
	if s.logPath != "" {
		if err := appendLine(s.logPath, in); err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(os.Stderr, "received %s at %s\n", in.Name, in.OccurredAt)
	return &hookrpc.Ack{Accepted: true, Message: "received " + in.Name}, nil
}

func appendLine(path string, event *hookrpc.Event) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(append(raw, '\n'))
	return err
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: hookrpc.HandshakeConfig,
		Plugins:         hookrpc.PluginMap(&server{logPath: os.Getenv("OFFLINEWINS_HOOK_LOG")}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
