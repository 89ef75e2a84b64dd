package orgchart

import (
	"context"
	"testing"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/directory"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/orgchart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	directory.Client
	chart     *directory.OrgChart
	gotRootID string
	gotDepth  int
}

func (f *fakeDirectory) GetOrgChart(ctx context.Context, rootID string, depth int) (*directory.OrgChart, error) {
	f.gotRootID = rootID
	f.gotDepth = depth
	return f.chart, nil
}

func sampleChart() *directory.OrgChart {
	return &directory.OrgChart{
		Root: &directory.OrgChartNode{
			ID:   "dept-1",
			Name: "Engineering",
			Type: "department",
			Children: []*directory.OrgChartNode{
				{
					ID:       "team-1",
					Name:     "Platform",
					Type:     "team",
					ParentID: "dept-1",
					Children: []*directory.OrgChartNode{
						{
							ID:       "emp-1",
							Name:     "Ada Lovelace",
							Type:     "employee",
							ParentID: "team-1",
							EmployeeData: &directory.Employee{
								ID:        "emp-1",
								FirstName: "Ada",
								LastName:  "Lovelace",
								Position:  "Engineer",
							},
						},
					},
				},
				{
					ID:       "team-2",
					Name:     "Product",
					Type:     "team",
					ParentID: "dept-1",
					// Directory sends a zero-valued employee object for
					// structural nodes; it must not survive the re-map
					EmployeeData: &directory.Employee{},
				},
			},
		},
	}
}

func TestGetOrgChartAssemblesTree(t *testing.T) {
	dir := &fakeDirectory{chart: sampleChart()}
	svc := NewOrgChartService(dir)

	root, err := svc.GetOrgChart(context.Background(), "dept-1", 3)
	require.NoError(t, err)

	assert.Equal(t, "dept-1", root.ID)
	assert.Equal(t, "department", root.Type)
	require.Len(t, root.Children, 2)

	// Child order is preserved
	assert.Equal(t, "team-1", root.Children[0].ID)
	assert.Equal(t, "team-2", root.Children[1].ID)

	leaf := root.Children[0].Children[0]
	require.NotNil(t, leaf.EmployeeData)
	assert.Equal(t, "Ada", leaf.EmployeeData.FirstName)
	assert.Equal(t, "Engineer", leaf.EmployeeData.Position)
}

func TestGetOrgChartDropsEmptyEmployeeData(t *testing.T) {
	dir := &fakeDirectory{chart: sampleChart()}
	svc := NewOrgChartService(dir)

	root, err := svc.GetOrgChart(context.Background(), "dept-1", 3)
	require.NoError(t, err)

	// Structural nodes carry no employee payload
	assert.Nil(t, root.EmployeeData)
	assert.Nil(t, root.Children[1].EmployeeData)
}

func TestGetOrgChartDefaultDepth(t *testing.T) {
	dir := &fakeDirectory{chart: sampleChart()}
	svc := NewOrgChartService(dir)

	_, err := svc.GetOrgChart(context.Background(), "", 0)
	require.NoError(t, err)

	assert.Equal(t, orgchart.DefaultDepth, dir.gotDepth)
	assert.Equal(t, "", dir.gotRootID)
}

func TestGetOrgChartChildrenNeverNil(t *testing.T) {
	dir := &fakeDirectory{chart: &directory.OrgChart{
		Root: &directory.OrgChartNode{ID: "emp-1", Type: "employee"},
	}}
	svc := NewOrgChartService(dir)

	root, err := svc.GetOrgChart(context.Background(), "emp-1", 1)
	require.NoError(t, err)

	// Leaf nodes serialize as [] rather than null
	assert.NotNil(t, root.Children)
	assert.Empty(t, root.Children)
}
