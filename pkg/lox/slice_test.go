package lox_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"num_market/pkg/lox"
)

func TestMap(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]string{"1", "2", "3"}, lox.Map([]int{1, 2, 3}, strconv.Itoa))
	rq.Equal([]string{}, lox.Map([]int(nil), strconv.Itoa))
}
