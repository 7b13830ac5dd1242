package rules

import (
	"testing"
	"testing/fstest"

	"github.com/archer884/coherity/internal/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/archer884/coherity/internal/rules/documentreadability"
	_ "github.com/archer884/coherity/internal/rules/paragraphreadability"
	_ "github.com/archer884/coherity/internal/rules/paragraphstructure"
)

func TestListRules_MatchesRegistry(t *testing.T) {
	docs, err := ListRules()
	require.NoError(t, err)

	registered := rule.All()
	require.Len(t, docs, len(registered))
	for i, r := range registered {
		assert.Equal(t, r.ID(), docs[i].ID)
		assert.Equal(t, r.Name(), docs[i].Name)
		assert.NotEmpty(t, docs[i].Description, r.ID())
	}
}

func TestRuleDocs_DescribeEverySetting(t *testing.T) {
	for _, r := range rule.All() {
		c, ok := r.(rule.Configurable)
		if !ok {
			continue
		}
		content, err := LookupRule(r.ID())
		require.NoError(t, err)
		for key := range c.DefaultSettings() {
			assert.Contains(t, content, "`"+key+"`", "%s does not document %s", r.ID(), key)
		}
	}
}

func TestLookupRule(t *testing.T) {
	for _, q := range []string{"MDS024", "mds024", "paragraph-structure"} {
		content, err := LookupRule(q)
		require.NoError(t, err, q)
		assert.Contains(t, content, "# MDS024: paragraph-structure", q)
	}

	_, err := LookupRule("sentence-length")
	assert.EqualError(t, err, `unknown rule "sentence-length"`)
}

func TestListRulesFromFS_PublishesOnlyRulesWithStatus(t *testing.T) {
	fsys := fstest.MapFS{
		"MDS901-ready/README.md":  {Data: []byte("---\nid: MDS901\nname: ready\nstatus: ready\ndescription: Done.\n---\n# MDS901\n")},
		"MDS902-draft/README.md":  {Data: []byte("---\nid: MDS902\nname: draft\ndescription: No status yet.\n---\n# MDS902\n")},
		"MDS903-broken/README.md": {Data: []byte("no front matter\n")},
	}

	docs, err := listRulesFromFS(fsys)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "MDS901", docs[0].ID)

	_, err = lookupRuleFromFS(fsys, "draft")
	assert.Error(t, err)
}
