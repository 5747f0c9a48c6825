package typecast

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	require.True(t, Is[string, string]())
	require.True(t, Is[point, point]())
	require.True(t, Is[*point, *point]())

	require.False(t, Is[string, int]())
	require.False(t, Is[point, vector]())
	require.False(t, Is[point, *point]())
	require.False(t, Is[celsius, float64]())

	t.Run("agrees with Ref", func(t *testing.T) {
		var value point
		_, ok := Ref[vector](&value)
		require.Equal(t, Is[point, vector](), ok)

		_, ok = Ref[point](&value)
		require.Equal(t, Is[point, point](), ok)
	})

	t.Run("does not allocate", func(t *testing.T) {
		allocs := testing.AllocsPerRun(100, func() {
			_ = Is[point, point]()
			_ = Is[point, vector]()
		})

		require.Zero(t, allocs)
	})
}

type withTypeRef struct {
	TypeRef[point]
}

func TestTypeRef(t *testing.T) {
	require.Equal(t, reflect.TypeFor[point](), Type[point]().ReflectType())

	// embedded witness satisfies HasType
	var value HasType = withTypeRef{}
	require.Equal(t, reflect.TypeFor[point](), value.ReflectType())
}
