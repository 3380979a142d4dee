package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCategoryHasTagsAndRole(t *testing.T) {
	for c := Category(0); c < categoryCount; c++ {
		short := c.ShortTag()
		long := c.LongTag()

		require.NotEmpty(t, short, "category %d missing short tag", c)
		require.NotEmpty(t, long, "category %d missing long tag", c)
		// CategoryError is the one category whose role is RoleError.
		if c == CategoryError {
			assert.Equal(t, RoleError, c.Role(), "CategoryError not mapped to RoleError")
		} else {
			assert.NotEqual(t, RoleError, c.Role(), "category %d silently mapped to RoleError", c)
		}
	}
}

func TestOutOfRangeCategoryFallsBackToError(t *testing.T) {
	bogus := Category(-1)
	assert.Equal(t, tags[CategoryError].short, bogus.ShortTag())
	assert.Equal(t, tags[CategoryError].long, bogus.LongTag())
	assert.Equal(t, RoleError, bogus.Role())

	tooHigh := categoryCount + 1
	assert.Equal(t, tags[CategoryError].short, tooHigh.ShortTag())
}

func TestSpecExampleTags(t *testing.T) {
	assert.Equal(t, "k", CategoryKeyword.ShortTag())
	assert.Equal(t, "nf", CategoryNameFunction.ShortTag())
	assert.Equal(t, "s", CategoryString.ShortTag())
	assert.Equal(t, "mi", CategoryNumberInteger.ShortTag())

	assert.Equal(t, "syntax-keyword", CategoryKeyword.LongTag())
	assert.Equal(t, "syntax-function", CategoryNameFunction.LongTag())
}

func TestPredicateGroups(t *testing.T) {
	assert.True(t, CategoryKeywordType.IsKeyword())
	assert.False(t, CategoryName.IsKeyword())

	assert.True(t, CategoryStringRaw.IsString())
	assert.True(t, CategoryStringEscape.IsString())

	assert.True(t, CategoryNumberHex.IsNumber())
	assert.True(t, CategoryCommentDoc.IsComment())
}
