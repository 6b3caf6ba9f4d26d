package resolver

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterops/staffmap/pkg/schema"
	"github.com/rosterops/staffmap/pkg/tabular"
)

func rec(source, id, name, email, cnic string) *schema.Record {
	r := schema.NewRecord(source, 0)
	r.Set(schema.FieldEmployeeID, tabular.String(id))
	r.Set(schema.FieldFullName, tabular.String(name))
	r.Set(schema.FieldOfficialEmail, tabular.String(email))
	r.Set(schema.FieldNationalID, tabular.String(cnic))
	return r
}

func mustResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := New(DefaultCascade())
	require.NoError(t, err)
	return r
}

func TestResolveEmailMatch(t *testing.T) {
	records := []*schema.Record{
		rec("Active", "101", "Zara Khan", "zara@x.com", ""),
		rec("Employee_Information", "", "Zara A. Khan", "zara@x.com", ""),
		rec("Active", "102", "Ali Raza", "ali@x.com", ""),
	}

	res, err := mustResolver(t).Resolve(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, res.Clusters, 2)
	assert.Equal(t, "official_email", res.Clusters[0].MatchedBy)
	assert.Equal(t, "zara@x.com", res.Clusters[0].Key)
	assert.Equal(t, 2, res.Clusters[0].Size())

	// Ali matched nobody and falls out as a singleton.
	assert.Equal(t, "", res.Clusters[1].MatchedBy)
	assert.Equal(t, 1, res.Clusters[1].Size())
}

func TestResolveNationalIDPunctuation(t *testing.T) {
	records := []*schema.Record{
		rec("Active", "101", "Zara Khan", "", "42101-1234567-1"),
		rec("Bank_Details", "", "Z. Khan", "", "4210112345671"),
	}

	res, err := mustResolver(t).Resolve(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, res.Clusters, 1)
	assert.Equal(t, "national_id", res.Clusters[0].MatchedBy)
	assert.Equal(t, "4210112345671", res.Clusters[0].Key)
}

func TestResolveNameFallback(t *testing.T) {
	records := []*schema.Record{
		rec("Active", "101", "  Zara   KHAN ", "zara@x.com", ""),
		rec("Onboarding_Form", "", "zara khan", "zara@personal.com", ""),
	}

	res, err := mustResolver(t).Resolve(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, res.Clusters, 1)
	assert.Equal(t, "full_name", res.Clusters[0].MatchedBy)
	require.Len(t, res.NameOnly, 1)
	assert.Same(t, res.Clusters[0], res.NameOnly[0])
}

func TestResolveEarlierPassWins(t *testing.T) {
	// Both share an email and a name; the email pass closes the cluster
	// first so the name pass never sees them.
	records := []*schema.Record{
		rec("Active", "101", "Zara Khan", "zara@x.com", ""),
		rec("Employee_Information", "", "Zara Khan", "zara@x.com", ""),
	}

	res, err := mustResolver(t).Resolve(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, res.Clusters, 1)
	assert.Equal(t, "official_email", res.Clusters[0].MatchedBy)
	assert.Empty(t, res.NameOnly)
}

func TestResolveSharedKeyDoesNotSplit(t *testing.T) {
	// Three records, pairwise linked by different keys: the email pass
	// joins the first two; the third shares only a name with the first
	// and must not pull members out of the closed cluster.
	records := []*schema.Record{
		rec("Active", "101", "Zara Khan", "zara@x.com", ""),
		rec("Employee_Information", "", "Z Khan", "zara@x.com", ""),
		rec("Onboarding_Form", "", "Zara Khan", "", ""),
	}

	res, err := mustResolver(t).Resolve(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, res.Clusters, 2)
	assert.Equal(t, 2, res.Clusters[0].Size())
	assert.Equal(t, "official_email", res.Clusters[0].MatchedBy)
	assert.Equal(t, 1, res.Clusters[1].Size())
}

func TestResolveAllSingletons(t *testing.T) {
	records := []*schema.Record{
		rec("Active", "101", "Zara Khan", "zara@x.com", ""),
		rec("Active", "102", "Ali Raza", "ali@x.com", ""),
		rec("Active", "103", "Sana Tariq", "", ""),
	}

	res, err := mustResolver(t).Resolve(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, res.Clusters, 3)
	for i, c := range res.Clusters {
		assert.Equal(t, 1, c.Size(), "cluster %d", i)
		assert.Empty(t, c.MatchedBy)
	}
	// Singletons keep input order.
	assert.Equal(t, "101", res.Clusters[0].Records[0].EmployeeID())
	assert.Equal(t, "103", res.Clusters[2].Records[0].EmployeeID())
}

func TestResolvePassStats(t *testing.T) {
	records := []*schema.Record{
		rec("Active", "101", "Zara Khan", "zara@x.com", ""),
		rec("Employee_Information", "", "Zara Khan", "zara@x.com", ""),
		rec("Active", "102", "Ali Raza", "", "42101-1"),
		rec("Bank_Details", "", "A Raza", "", "421011"),
	}

	res, err := mustResolver(t).Resolve(context.Background(), records)
	require.NoError(t, err)

	want := []PassStats{
		{Strategy: "official_email", Clusters: 1, Records: 2},
		{Strategy: "national_id", Clusters: 1, Records: 2},
		{Strategy: "full_name", Clusters: 0, Records: 0},
	}
	if diff := cmp.Diff(want, res.Passes); diff != "" {
		t.Errorf("pass stats mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mustResolver(t).Resolve(ctx, []*schema.Record{rec("Active", "101", "Zara Khan", "", "")})
	assert.Error(t, err)
}

func TestNewRejectsEmptyCascade(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestFoldName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Zara   KHAN ", "zara khan"},
		{"zara khan", "zara khan"},
		{"ＺＡＲＡ Khan", "zara khan"}, // fullwidth compatibility forms
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FoldName(tt.in), "input %q", tt.in)
	}
}
