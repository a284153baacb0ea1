package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
)

func TestMomentQuery_PublicListing(t *testing.T) {
	q := momentQuery(ports.MomentFilter{UserID: 7})

	assert.Equal(t, bson.M{
		"deleted": false,
		"status":  domain.MomentVisible,
		"user_id": int64(7),
	}, q)
}

func TestMomentQuery_Moderation(t *testing.T) {
	q := momentQuery(ports.MomentFilter{IncludeHidden: true, Keyword: "a.b"})

	assert.NotContains(t, q, "status")
	assert.Equal(t, false, q["deleted"])
	assert.Equal(t, bson.M{"$regex": `a\.b`, "$options": "i"}, q["content"])
}
