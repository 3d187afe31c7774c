// Copyright (c) 2026, The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"testing"

	"cogentcore.org/core/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineSpec(t *testing.T) {
	ls, err := ParseLineSpec("r-o")
	require.NoError(t, err)
	assert.Equal(t, "-", ls.Style)
	assert.Equal(t, byte('o'), ls.Marker)
	assert.True(t, ls.HasColor)
	assert.Equal(t, colors.Red, ls.Color)

	ls, err = ParseLineSpec("--")
	require.NoError(t, err)
	assert.Equal(t, "--", ls.Style)
	assert.Zero(t, ls.Marker)
	assert.False(t, ls.HasColor)

	ls, err = ParseLineSpec("-.k")
	require.NoError(t, err)
	assert.Equal(t, "-.", ls.Style)
	assert.Equal(t, colors.Black, ls.Color)

	ls, err = ParseLineSpec(":x")
	require.NoError(t, err)
	assert.Equal(t, ":", ls.Style)
	assert.Equal(t, byte('x'), ls.Marker)

	// a lone dot is a marker, not a style
	ls, err = ParseLineSpec(".")
	require.NoError(t, err)
	assert.Equal(t, "", ls.Style)
	assert.Equal(t, byte('.'), ls.Marker)

	// empty means defaults
	ls, err = ParseLineSpec("")
	require.NoError(t, err)
	assert.Equal(t, LineSpec{}, ls)
}

func TestParseLineSpecErrors(t *testing.T) {
	_, err := ParseLineSpec("q")
	assert.Error(t, err)

	_, err = ParseLineSpec("rg")
	assert.Error(t, err, "duplicate color")

	_, err = ParseLineSpec("o+")
	assert.Error(t, err, "duplicate marker")

	_, err = ParseLineSpec("-:")
	assert.Error(t, err, "duplicate style")
}
