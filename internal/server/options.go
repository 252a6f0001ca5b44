package server

import (
	"time"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
)

const (
	DefaultListen          = "127.0.0.1:8050"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
)

func defaultOptions() *Options {
	return &Options{
		Listen:          DefaultListen,
		ShutdownTimeout: DefaultShutdownTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		Logger:          logger.Noop(),
	}
}

type Options struct {
	Listen          string
	ShutdownTimeout time.Duration
	WriteTimeout    time.Duration
	Logger          logger.Logger
}

type Option func(*Options)

func WithListen(addr string) Option {
	return func(opts *Options) {
		opts.Listen = addr
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(opts *Options) {
		opts.ShutdownTimeout = d
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(opts *Options) {
		opts.WriteTimeout = d
	}
}

func WithLogger(l logger.Logger) Option {
	return func(opts *Options) {
		if l != nil {
			opts.Logger = l
		}
	}
}
