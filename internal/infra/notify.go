package infra

import (
	"os"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// categoryChannel is the NOTIFY channel fired by a trigger on the category
// table. The subscription exists only to invalidate the in-process category
// list so admin edits show up without a restart.
const categoryChannel = "category_changes"

type CategoryListener struct {
	listener *pq.Listener
	logger   *zap.Logger
	onChange func()
	done     chan struct{}
}

func NewCategoryListener(logger *zap.Logger, onChange func()) *CategoryListener {
	dsn := os.Getenv("POSTGRES_URL")

	l := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("category listener event", zap.Int("event", int(ev)), zap.Error(err))
		}
	})

	return &CategoryListener{
		listener: l,
		logger:   logger,
		onChange: onChange,
		done:     make(chan struct{}),
	}
}

func (c *CategoryListener) Start() error {
	if err := c.listener.Listen(categoryChannel); err != nil {
		return err
	}
	go c.loop()
	return nil
}

func (c *CategoryListener) loop() {
	for {
		select {
		case <-c.done:
			return
		case n := <-c.listener.Notify:
			if n == nil {
				// nil notification means the connection was re-established;
				// refresh anyway since changes may have been missed.
				c.onChange()
				continue
			}
			c.logger.Debug("category change notification", zap.String("payload", n.Extra))
			c.onChange()
		case <-time.After(90 * time.Second):
			if err := c.listener.Ping(); err != nil {
				c.logger.Warn("category listener ping failed", zap.Error(err))
			}
		}
	}
}

func (c *CategoryListener) Stop() error {
	close(c.done)
	return c.listener.Close()
}
