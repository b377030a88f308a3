package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

type messageSender interface {
	SendMessage(text string) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string) (string, error)
}

type Service struct {
	sender  messageSender
	handler MessageHandler
}

func NewService(sender messageSender, store recordStore, generator reportGenerator, config config) *Service {
	return &Service{
		sender:  sender,
		handler: newHandler(store, generator, config),
	}
}

type Message struct {
	Text string
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	cmd, _ := parseCommand(msg.Text)
	span.SetTag("command", cmd)

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(cmd, elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text)
	if err != nil {
		_ = s.sender.SendMessage("Sorry, something wrong happened...\n" + resp)
		return err
	}
	return s.sender.SendMessage(resp)
}
