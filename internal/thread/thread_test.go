package thread

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/querytoheal/health-qa-api/internal/models"
)

func answer(id string, parentID *string, upvotes int, createdAt time.Time) models.Answer {
	return models.Answer{
		ID:         id,
		Content:    "content of " + id,
		QuestionID: "q1",
		ParentID:   parentID,
		Upvotes:    upvotes,
		CreatedAt:  createdAt,
	}
}

func ptr(s string) *string {
	return &s
}

func TestBuild_SingleRootWithChild(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	answers := []models.Answer{
		answer("a1", nil, 0, base),
		answer("a2", ptr("a1"), 0, base.Add(time.Minute)),
	}

	forest := Build(answers, SortNewest)

	require.Len(t, forest, 1)
	require.Equal(t, "a1", forest[0].Answer.ID)
	require.Len(t, forest[0].Replies, 1)
	require.Equal(t, "a2", forest[0].Replies[0].Answer.ID)
	require.Empty(t, forest[0].Replies[0].Replies)
}

func TestBuild_GroupsChildrenRecursively(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	answers := []models.Answer{
		answer("root1", nil, 0, base),
		answer("root2", nil, 0, base.Add(time.Hour)),
		answer("child1", ptr("root1"), 0, base.Add(time.Minute)),
		answer("child2", ptr("root1"), 0, base.Add(2*time.Minute)),
		answer("grandchild", ptr("child1"), 0, base.Add(3*time.Minute)),
	}

	forest := Build(answers, SortOldest)

	require.Len(t, forest, 2)
	require.Equal(t, "root1", forest[0].Answer.ID)
	require.Equal(t, "root2", forest[1].Answer.ID)

	require.Len(t, forest[0].Replies, 2)
	require.Equal(t, "child1", forest[0].Replies[0].Answer.ID)
	require.Equal(t, "child2", forest[0].Replies[1].Answer.ID)

	require.Len(t, forest[0].Replies[0].Replies, 1)
	require.Equal(t, "grandchild", forest[0].Replies[0].Replies[0].Answer.ID)
}

func TestBuild_SortNewestPerLevel(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	answers := []models.Answer{
		answer("old", nil, 0, base),
		answer("new", nil, 0, base.Add(time.Hour)),
		answer("reply-old", ptr("old"), 0, base.Add(time.Minute)),
		answer("reply-new", ptr("old"), 0, base.Add(2*time.Minute)),
	}

	forest := Build(answers, SortNewest)

	require.Equal(t, "new", forest[0].Answer.ID)
	require.Equal(t, "old", forest[1].Answer.ID)
	require.Equal(t, "reply-new", forest[1].Replies[0].Answer.ID)
	require.Equal(t, "reply-old", forest[1].Replies[1].Answer.ID)
}

func TestBuild_SortBestByUpvotes(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	answers := []models.Answer{
		answer("few", nil, 1, base.Add(time.Hour)),
		answer("many", nil, 9, base),
		answer("tied-old", nil, 5, base),
		answer("tied-new", nil, 5, base.Add(time.Minute)),
	}

	forest := Build(answers, SortBest)

	require.Equal(t, "many", forest[0].Answer.ID)
	// Equal upvotes fall back to newest first.
	require.Equal(t, "tied-new", forest[1].Answer.ID)
	require.Equal(t, "tied-old", forest[2].Answer.ID)
	require.Equal(t, "few", forest[3].Answer.ID)
}

func TestBuild_MissingParentPromotedToRoot(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	answers := []models.Answer{
		answer("visible", nil, 0, base),
		answer("orphan", ptr("deleted-parent"), 0, base.Add(time.Minute)),
	}

	forest := Build(answers, SortOldest)

	require.Len(t, forest, 2)
	require.Equal(t, "visible", forest[0].Answer.ID)
	require.Equal(t, "orphan", forest[1].Answer.ID)
}

func TestBuild_Empty(t *testing.T) {
	require.Empty(t, Build(nil, SortNewest))
}

func TestDepth(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	answers := []models.Answer{
		answer("root", nil, 0, base),
		answer("d1", ptr("root"), 0, base),
		answer("d2", ptr("d1"), 0, base),
		answer("d3", ptr("d2"), 0, base),
	}

	require.Equal(t, 0, Depth(answers, "root"))
	require.Equal(t, 1, Depth(answers, "d1"))
	require.Equal(t, 2, Depth(answers, "d2"))
	require.Equal(t, 3, Depth(answers, "d3"))
	require.Equal(t, 0, Depth(answers, "unknown"))
}

func TestDepth_BrokenChain(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	answers := []models.Answer{
		answer("child", ptr("gone"), 0, base),
	}

	require.Equal(t, 0, Depth(answers, "child"))
}

func TestParseSort(t *testing.T) {
	require.Equal(t, SortNewest, ParseSort(""))
	require.Equal(t, SortNewest, ParseSort("bogus"))
	require.Equal(t, SortOldest, ParseSort("oldest"))
	require.Equal(t, SortBest, ParseSort("best"))
}
