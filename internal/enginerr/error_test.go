package enginerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestNewTagsKind(t *testing.T) {
	err := New(EKind.InvalidArgument(), "bad input")
	assert.Equal(t, EKind.InvalidArgument(), KindOf(err))
	assert.EqualError(t, err, "bad input")
}

func TestWrapPreservesCauseAndKind(t *testing.T) {
	base := errors.New("disk full")
	err := Wrap(EKind.LoadFailed(), base, "loading model")
	assert.Equal(t, EKind.LoadFailed(), KindOf(err))
	assert.Contains(t, err.Error(), "loading model")
	assert.Contains(t, err.Error(), "disk full")
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(EKind.PipelineFailed(), nil, "whatever"))
}

func TestKindOfUntaggedErrorFallsBackToPipelineFailed(t *testing.T) {
	assert.Equal(t, EKind.PipelineFailed(), KindOf(errors.New("plain error")))
}

func TestKindOfNilError(t *testing.T) {
	assert.Equal(t, EKind.PipelineFailed(), KindOf(nil))
}

func TestKindCodeMapping(t *testing.T) {
	cases := map[Kind]codes.Code{
		EKind.InvalidArgument():    codes.InvalidArgument,
		EKind.FailedPrecondition(): codes.FailedPrecondition,
		EKind.ResourceExhausted():  codes.ResourceExhausted,
		EKind.NotFound():           codes.NotFound,
		EKind.LoadFailed():         codes.FailedPrecondition,
		EKind.Cancelled():          codes.Cancelled,
		EKind.PipelineFailed():     codes.Internal,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.Code(), "kind %s", kind)
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	assert.Equal(t, "InvalidArgument", EKind.InvalidArgument().String())
}
