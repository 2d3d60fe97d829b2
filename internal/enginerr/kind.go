// Package enginerr declares the error taxonomy shared by both engines and
// the gRPC status-code mapping for it.
package enginerr

import (
	"reflect"

	"github.com/JeffreyRichter/enum/enum"
	"google.golang.org/grpc/codes"
)

// Kind tags an error with one of the seven categories the runtime
// distinguishes between. Kind is attached to an error via Wrap/New and
// recovered at the gRPC boundary via KindOf.
type Kind uint8

var EKind = Kind(0)

func (Kind) InvalidArgument() Kind   { return Kind(1) }
func (Kind) FailedPrecondition() Kind { return Kind(2) }
func (Kind) ResourceExhausted() Kind { return Kind(3) }
func (Kind) NotFound() Kind          { return Kind(4) }
func (Kind) LoadFailed() Kind        { return Kind(5) }
func (Kind) Cancelled() Kind         { return Kind(6) }
func (Kind) PipelineFailed() Kind    { return Kind(7) }

func (k Kind) String() string {
	return enum.StringInt(k, reflect.TypeOf(k))
}

// Code maps a Kind to the gRPC status code the Service layer returns.
func (k Kind) Code() codes.Code {
	switch k {
	case EKind.InvalidArgument():
		return codes.InvalidArgument
	case EKind.FailedPrecondition():
		return codes.FailedPrecondition
	case EKind.ResourceExhausted():
		return codes.ResourceExhausted
	case EKind.NotFound():
		return codes.NotFound
	case EKind.LoadFailed():
		return codes.FailedPrecondition
	case EKind.Cancelled():
		return codes.Cancelled
	case EKind.PipelineFailed():
		return codes.Internal
	default:
		return codes.Unknown
	}
}
