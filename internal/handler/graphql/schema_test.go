package graphql

import (
	"context"
	"testing"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/directory"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/employee"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/orgchart"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrgChartService struct {
	node *orgchart.Node
}

func (f *fakeOrgChartService) GetOrgChart(ctx context.Context, rootID string, depth int) (*orgchart.Node, error) {
	return f.node, nil
}

type fakeEmployeeService struct {
	employee.Service
	teamMembers []directory.Employee
	managerTeam []directory.Employee
	departments []directory.Department
	teams       []directory.Team
}

func (f *fakeEmployeeService) GetTeamMembers(ctx context.Context, teamID string) ([]directory.Employee, error) {
	return f.teamMembers, nil
}

func (f *fakeEmployeeService) GetManagerTeam(ctx context.Context, managerID string) ([]directory.Employee, error) {
	return f.managerTeam, nil
}

func (f *fakeEmployeeService) GetDepartments(ctx context.Context, companyID string) ([]directory.Department, error) {
	return f.departments, nil
}

func (f *fakeEmployeeService) GetTeams(ctx context.Context, departmentID string) ([]directory.Team, error) {
	return f.teams, nil
}

func buildSchema(t *testing.T, org *fakeOrgChartService, emp *fakeEmployeeService) graphql.Schema {
	t.Helper()
	schema, err := NewSchema(org, emp)
	require.NoError(t, err)
	return schema
}

func TestOrgChartQuery(t *testing.T) {
	org := &fakeOrgChartService{
		node: &orgchart.Node{
			ID:   "dept-1",
			Name: "Engineering",
			Type: "department",
			Children: []*orgchart.Node{
				{
					ID:   "emp-1",
					Name: "Ada Lovelace",
					Type: "employee",
					EmployeeData: &orgchart.EmployeeDetail{
						ID:        "emp-1",
						FirstName: "Ada",
						Position:  "Engineer",
					},
				},
			},
		},
	}
	schema := buildSchema(t, org, &fakeEmployeeService{})

	result := graphql.Do(graphql.Params{
		Schema: schema,
		RequestString: `{
			orgChart(rootId: "dept-1", depth: 2) {
				id
				name
				type
				children {
					id
					employeeData { firstName position }
				}
			}
		}`,
		Context: context.Background(),
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	chart := data["orgChart"].(map[string]interface{})
	assert.Equal(t, "dept-1", chart["id"])
	assert.Equal(t, "department", chart["type"])

	children := chart["children"].([]interface{})
	require.Len(t, children, 1)
	leaf := children[0].(map[string]interface{})
	detail := leaf["employeeData"].(map[string]interface{})
	assert.Equal(t, "Ada", detail["firstName"])
	assert.Equal(t, "Engineer", detail["position"])
}

func TestTeamMembersQueryByTeam(t *testing.T) {
	emp := &fakeEmployeeService{
		teamMembers: []directory.Employee{
			{ID: "e1", FirstName: "Ada"},
			{ID: "e2", FirstName: "Grace"},
		},
	}
	schema := buildSchema(t, &fakeOrgChartService{}, emp)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ teamMembers(teamId: "team-1") { id firstName } }`,
		Context:       context.Background(),
	})
	require.Empty(t, result.Errors)

	members := result.Data.(map[string]interface{})["teamMembers"].([]interface{})
	require.Len(t, members, 2)
	assert.Equal(t, "Ada", members[0].(map[string]interface{})["firstName"])
}

func TestTeamMembersQueryPrefersManagerFilter(t *testing.T) {
	emp := &fakeEmployeeService{
		teamMembers: []directory.Employee{{ID: "wrong"}},
		managerTeam: []directory.Employee{{ID: "e9", FirstName: "Edsger"}},
	}
	schema := buildSchema(t, &fakeOrgChartService{}, emp)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ teamMembers(managerId: "mgr-1") { id } }`,
		Context:       context.Background(),
	})
	require.Empty(t, result.Errors)

	members := result.Data.(map[string]interface{})["teamMembers"].([]interface{})
	require.Len(t, members, 1)
	assert.Equal(t, "e9", members[0].(map[string]interface{})["id"])
}

func TestDepartmentsAndTeamsQueries(t *testing.T) {
	emp := &fakeEmployeeService{
		departments: []directory.Department{{ID: "d1", Name: "Engineering"}},
		teams:       []directory.Team{{ID: "t1", Name: "Platform"}},
	}
	schema := buildSchema(t, &fakeOrgChartService{}, emp)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ departments { id name } teams { id name } }`,
		Context:       context.Background(),
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	departments := data["departments"].([]interface{})
	require.Len(t, departments, 1)
	assert.Equal(t, "Engineering", departments[0].(map[string]interface{})["name"])

	teams := data["teams"].([]interface{})
	require.Len(t, teams, 1)
	assert.Equal(t, "Platform", teams[0].(map[string]interface{})["name"])
}
