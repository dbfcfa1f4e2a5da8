package repository

import (
	goerrors "github.com/TudorHulban/go-errors"
)

func errEmptyID(caller string) error {
	return goerrors.ErrInvalidInput{
		Caller:    caller,
		InputName: "id",
		Issue: goerrors.ErrNilInput{
			InputName: "id",
		},
	}
}
