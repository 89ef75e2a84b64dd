package graphql

import (
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/employee"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/orgchart"
	"github.com/graphql-go/graphql"
)

func newEmployeeType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Employee",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.String},
			"firstName":      &graphql.Field{Type: graphql.String},
			"lastName":       &graphql.Field{Type: graphql.String},
			"email":          &graphql.Field{Type: graphql.String},
			"phone":          &graphql.Field{Type: graphql.String},
			"departmentId":   &graphql.Field{Type: graphql.String},
			"departmentName": &graphql.Field{Type: graphql.String},
			"teamId":         &graphql.Field{Type: graphql.String},
			"teamName":       &graphql.Field{Type: graphql.String},
			"position":       &graphql.Field{Type: graphql.String},
			"managerId":      &graphql.Field{Type: graphql.String},
			"managerName":    &graphql.Field{Type: graphql.String},
			"hireDate":       &graphql.Field{Type: graphql.String},
			"status":         &graphql.Field{Type: graphql.String},
		},
	})
}

func newEmployeeDetailType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "EmployeeDetail",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.String},
			"firstName":      &graphql.Field{Type: graphql.String},
			"lastName":       &graphql.Field{Type: graphql.String},
			"email":          &graphql.Field{Type: graphql.String},
			"phone":          &graphql.Field{Type: graphql.String},
			"position":       &graphql.Field{Type: graphql.String},
			"departmentId":   &graphql.Field{Type: graphql.String},
			"departmentName": &graphql.Field{Type: graphql.String},
			"teamId":         &graphql.Field{Type: graphql.String},
			"teamName":       &graphql.Field{Type: graphql.String},
			"managerId":      &graphql.Field{Type: graphql.String},
			"managerName":    &graphql.Field{Type: graphql.String},
			"status":         &graphql.Field{Type: graphql.String},
		},
	})
}

func newDepartmentType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Department",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.String},
			"name":        &graphql.Field{Type: graphql.String},
			"companyId":   &graphql.Field{Type: graphql.String},
			"managerId":   &graphql.Field{Type: graphql.String},
			"managerName": &graphql.Field{Type: graphql.String},
		},
	})
}

func newTeamType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Team",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.String},
			"name":         &graphql.Field{Type: graphql.String},
			"departmentId": &graphql.Field{Type: graphql.String},
			"managerId":    &graphql.Field{Type: graphql.String},
			"managerName":  &graphql.Field{Type: graphql.String},
		},
	})
}

// NewSchema builds the query schema over the org chart and directory
// services. Mutations go through REST; the schema is read only.
func NewSchema(orgChartService orgchart.Service, employeeService employee.Service) (graphql.Schema, error) {
	employeeDetailType := newEmployeeDetailType()

	orgChartNodeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "OrgChartNode",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.String},
			"name":         &graphql.Field{Type: graphql.String},
			"type":         &graphql.Field{Type: graphql.String},
			"parentId":     &graphql.Field{Type: graphql.String},
			"employeeData": &graphql.Field{Type: employeeDetailType},
		},
	})
	// The node type references itself, so children is attached after the
	// object exists.
	orgChartNodeType.AddFieldConfig("children", &graphql.Field{
		Type: graphql.NewList(orgChartNodeType),
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"orgChart": &graphql.Field{
				Type: orgChartNodeType,
				Args: graphql.FieldConfigArgument{
					"rootId": &graphql.ArgumentConfig{Type: graphql.String},
					"depth":  &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rootID, _ := p.Args["rootId"].(string)
					depth, _ := p.Args["depth"].(int)
					return orgChartService.GetOrgChart(p.Context, rootID, depth)
				},
			},
			"departments": &graphql.Field{
				Type: graphql.NewList(newDepartmentType()),
				Args: graphql.FieldConfigArgument{
					"companyId": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					companyID, _ := p.Args["companyId"].(string)
					return employeeService.GetDepartments(p.Context, companyID)
				},
			},
			"teams": &graphql.Field{
				Type: graphql.NewList(newTeamType()),
				Args: graphql.FieldConfigArgument{
					"departmentId": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					departmentID, _ := p.Args["departmentId"].(string)
					return employeeService.GetTeams(p.Context, departmentID)
				},
			},
			"teamMembers": &graphql.Field{
				Type: graphql.NewList(newEmployeeType()),
				Args: graphql.FieldConfigArgument{
					"teamId":    &graphql.ArgumentConfig{Type: graphql.String},
					"managerId": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					teamID, _ := p.Args["teamId"].(string)
					managerID, _ := p.Args["managerId"].(string)
					if managerID != "" {
						return employeeService.GetManagerTeam(p.Context, managerID)
					}
					return employeeService.GetTeamMembers(p.Context, teamID)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}
