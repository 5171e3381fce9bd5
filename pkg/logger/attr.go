package logger

import (
	"log/slog"
	"time"
)

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Username(username string) slog.Attr {
	if username == "" {
		return slog.Attr{}
	}
	return slog.String("username", username)
}

func JobID(id int64) slog.Attr {
	return slog.Int64("job_id", id)
}

func CompanyHandle(handle string) slog.Attr {
	return slog.String("company_handle", handle)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
