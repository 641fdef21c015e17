package cmd

import "github.com/ardnew/msgfmt/msg"

var (
	ErrReadSource    = msg.NewError("read template source")
	ErrReadParams    = msg.NewError("read parameters file")
	ErrInvalidLocale = msg.NewError("invalid locale")
	ErrWriteConfig   = msg.NewError("write configuration file")
	ErrFileExists    = msg.NewError("file exists (use --force to overwrite)")
	ErrMarshal       = msg.NewError("marshal output")
)
