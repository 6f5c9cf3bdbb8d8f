package out

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	hookrpc "offlinewins/internal/modules/hook/adapter/out/rpc"
	"offlinewins/internal/modules/hook/domain"
	hookout "offlinewins/internal/modules/hook/port/out"
	"offlinewins/internal/platform/logger"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

type GRPCHost struct {
	debug bool
}

// NewGRPCHost launches one hook process per call. With debug set, hook
// process output is forwarded to stderr.
func NewGRPCHost(debug bool) hookout.Host {
	return &GRPCHost{debug: debug}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	_, err := h.GetMetadata(ctx, manifest)
	return err
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	events := make([]domain.EventName, 0, len(meta.Events))
	for _, event := range meta.Events {
		events = append(events, domain.EventName(event))
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Events: events}, nil
}

func (h *GRPCHost) Notify(ctx context.Context, manifest domain.Manifest, event domain.Event) (domain.Ack, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Ack{}, err
	}
	defer closeFn()

	callCtx, cancel := callContext(ctx, defaultCallTimeout)
	defer cancel()
	ack, err := client.Notify(callCtx, &hookrpc.Event{
		Name:            string(event.Name),
		OccurredAt:      event.OccurredAt.Format(time.RFC3339),
		SessionID:       event.SessionID,
		Date:            event.Date,
		DurationMinutes: int32(event.DurationMinutes),
		TotalMinutes:    int32(event.TotalMinutes),
		GoalMinutes:     int32(event.GoalMinutes),
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.Ack{}, fmt.Errorf("%w: %s", domain.ErrHookTimeout, manifest.Name)
		}
		return domain.Ack{}, fmt.Errorf("notify hook: %w", err)
	}
	return domain.Ack{Accepted: ack.Accepted, Message: ack.Message}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest) (hookrpc.HookClient, func(), error) {
	options := &hclog.LoggerOptions{Name: "hook." + manifest.Name, Output: io.Discard, Level: hclog.NoLevel}
	if h.debug {
		options.Output = os.Stderr
		options.Level = hclog.Debug
	}
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  hookrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          hookrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(options),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start hook client: %w", err)
	}
	raw, err := rpcClient.Dispense(hookrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense hook: %w", err)
	}
	typed, ok := raw.(hookrpc.HookClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("hook rpc client type mismatch")
	}
	logger.Debug("hook connected", "hook", manifest.Name)
	return typed, closeFn, nil
}

func callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
