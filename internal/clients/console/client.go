package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/messages"
)

const prompt = "> "

type timeoutGetter interface {
	CommandTimeout() time.Duration
}

// Client reads one command per line and writes replies back.
type Client struct {
	in      io.Reader
	out     io.Writer
	timeout time.Duration
}

func New(in io.Reader, out io.Writer, cfg timeoutGetter) *Client {
	return &Client{
		in:      in,
		out:     out,
		timeout: cfg.CommandTimeout(),
	}
}

func (c *Client) SendMessage(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	if err != nil {
		return errors.Wrap(err, "write reply")
	}
	return nil
}

// ListenUpdates handles lines until the input ends or ctx is cancelled.
// Commands are handled one at a time in this goroutine.
func (c *Client) ListenUpdates(ctx context.Context, msgModel *messages.Service) {
	updates := c.readLines(ctx)

	logger.Info("Start listening for commands")
	c.prompt()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for commands")
			return
		case line, ok := <-updates:
			if !ok {
				logger.Info("Input closed")
				return
			}
			c.listenOnce(ctx, line, msgModel)
			c.prompt()
		}
	}
}

func (c *Client) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Error("failed to read input", zap.Error(err))
		}
	}()
	return lines
}

func (c *Client) prompt() {
	_, _ = fmt.Fprint(c.out, prompt)
}

func (c *Client) listenOnce(ctx context.Context, line string, msgModel *messages.Service) {
	text := strings.TrimSpace(line)
	if text == "" {
		return
	}
	logger.Debug("command received", zap.String("text", text))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := msgModel.HandleIncomingMessage(ctx, messages.Message{Text: text})
	if err != nil {
		logger.Error("error processing command:", zap.Error(err))
	}
}
