// Package log writes one JSON object per line through the standard logger.
package log

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Fields map[string]any

type entry struct {
	TS     string `json:"ts"`
	Level  string `json:"level"`
	ReqID  string `json:"req_id,omitempty"`
	IP     string `json:"ip,omitempty"`
	Method string `json:"method,omitempty"`
	Path   string `json:"path,omitempty"`
	Action string `json:"action,omitempty"`
	Status int    `json:"status,omitempty"`
	Err    string `json:"err,omitempty"`
	Fields Fields `json:"fields,omitempty"`
}

func write(level string, c *fiber.Ctx, action string, err error, fields Fields) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, Fields: fields}
	if c != nil {
		e.IP = c.IP()
		e.Method = c.Method()
		e.Path = c.Path()
		e.Status = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e.ReqID = rid
		}
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(c *fiber.Ctx, action string, fields Fields)  { write("info", c, action, nil, fields) }
func Audit(c *fiber.Ctx, action string, fields Fields) { write("audit", c, action, nil, fields) }

// Warn records a rejected request. err is the validation failure, if any.
func Warn(c *fiber.Ctx, action string, err error, fields Fields) {
	write("warn", c, action, err, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields Fields) {
	write("error", c, action, err, fields)
}

// TeeFile sends standard log output to stdout and the file at path. The
// returned closer puts the logger back on stderr and closes the file.
func TeeFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return closerFunc(func() error {
		log.SetOutput(os.Stderr)
		return f.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
