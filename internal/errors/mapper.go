// Package errors converts storage and infrastructure failures into gRPC
// status errors, so handlers return consistent codes without inspecting
// gorm or context internals themselves.
package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

// Map translates an error from the repository layer into a status error.
// Unrecognized errors surface as Internal with the original message kept
// for debugging.
func Map(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument is for request validation failures in the service layer.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// AlreadyExists reports a uniqueness conflict.
func AlreadyExists(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}

// PermissionDenied is returned when moderation has banned the acting user.
func PermissionDenied(msg string) error {
	return status.Error(codes.PermissionDenied, msg)
}
