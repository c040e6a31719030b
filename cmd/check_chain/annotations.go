// Copyright 2024 Adam Chalkley
//
// https://github.com/atc0005/pathval
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/atc0005/pathval/internal/chainio"
)

// missingFileAdvice offers advice to the sysadmin when a configured
// certificate file cannot be found.
const missingFileAdvice = "double-check the path given to -leaf, -trust-bundle or -intermediates"

// emptyFileAdvice offers advice when a configured file is present but
// contains no usable PEM content.
const emptyFileAdvice = "the file exists but has no PEM-encoded CERTIFICATE blocks"

// annotateError appends human-readable explanations for errors commonly
// seen when loading certificate material from disk. The original error
// collection is returned unmodified if no annotations apply.
func annotateError(logger zerolog.Logger, errs ...error) []error {
	funcTimeStart := time.Now()

	var annotated int
	defer func(counter *int) {
		logger.Debug().
			Dur("duration", time.Since(funcTimeStart)).
			Int("errors_evaluated", len(errs)).
			Int("errors_annotated", *counter).
			Msg("annotateError finished")
	}(&annotated)

	if len(errs) == 0 {
		return nil
	}

	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}

		switch {
		case errors.Is(err, os.ErrNotExist):
			out = append(out, errAnnotate(err, missingFileAdvice))
			annotated++

		case errors.Is(err, chainio.ErrEmptyCertificateFile):
			out = append(out, errAnnotate(err, emptyFileAdvice))
			annotated++

		default:
			out = append(out, err)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

func errAnnotate(err error, advice string) error {
	return &annotatedError{cause: err, advice: advice}
}

// annotatedError decorates a cause with operator-facing advice while
// preserving it for errors.Is/errors.As.
type annotatedError struct {
	cause  error
	advice string
}

func (e *annotatedError) Error() string {
	return e.cause.Error() + "; " + e.advice
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}
