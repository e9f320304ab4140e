package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/maybe"
)

type result struct {
	Line   int                      `json:"line"`
	Valid  bool                     `json:"valid"`
	Record maybe.Maybe[form.Record] `json:"record"`
}

type summary struct {
	accepted int
	rejected int
}

func validateAll(w io.Writer, log *slog.Logger, v *form.Validator, records []numberedRecord) (summary, error) {
	var s summary
	enc := json.NewEncoder(w)
	for _, rec := range records {
		validated := v.Validate(rec.raw)
		valid := maybe.Match(validated,
			func(form.Record) bool { return true },
			func() bool { return false },
		)
		if valid {
			s.accepted++
		} else {
			s.rejected++
		}
		log.Debug("record checked", logger.Line(rec.line), logger.Outcome(valid))

		if err := enc.Encode(result{Line: rec.line, Valid: valid, Record: validated}); err != nil {
			return s, err
		}
	}
	return s, nil
}
