package orgchart

import (
	"context"
	"fmt"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/directory"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/orgchart"
)

type service struct {
	directory directory.Client
}

// NewOrgChartService creates the org chart service.
func NewOrgChartService(directoryClient directory.Client) orgchart.Service {
	return &service{directory: directoryClient}
}

func (s *service) GetOrgChart(ctx context.Context, rootID string, depth int) (*orgchart.Node, error) {
	if depth <= 0 {
		depth = orgchart.DefaultDepth
	}

	chart, err := s.directory.GetOrgChart(ctx, rootID, depth)
	if err != nil {
		return nil, fmt.Errorf("fetch org chart: %w", err)
	}
	if chart.Root == nil {
		return nil, fmt.Errorf("directory returned an empty org chart")
	}

	return assembleNode(chart.Root), nil
}

// assembleNode copies one wire node into the caller-facing shape, depth
// first, keeping child order. The directory service already truncated the
// tree to the requested depth; no bounding happens here.
func assembleNode(src *directory.OrgChartNode) *orgchart.Node {
	node := &orgchart.Node{
		ID:       src.ID,
		Name:     src.Name,
		Type:     src.Type,
		ParentID: src.ParentID,
		Children: make([]*orgchart.Node, 0, len(src.Children)),
	}

	for _, child := range src.Children {
		node.Children = append(node.Children, assembleNode(child))
	}

	// An empty employee id means no employee is attached to this node; the
	// field stays nil rather than becoming a zero-valued object.
	if src.EmployeeData != nil && src.EmployeeData.ID != "" {
		node.EmployeeData = &orgchart.EmployeeDetail{
			ID:             src.EmployeeData.ID,
			FirstName:      src.EmployeeData.FirstName,
			LastName:       src.EmployeeData.LastName,
			Email:          src.EmployeeData.Email,
			Phone:          src.EmployeeData.Phone,
			Position:       src.EmployeeData.Position,
			DepartmentID:   src.EmployeeData.DepartmentID,
			DepartmentName: src.EmployeeData.DepartmentName,
			TeamID:         src.EmployeeData.TeamID,
			TeamName:       src.EmployeeData.TeamName,
			ManagerID:      src.EmployeeData.ManagerID,
			ManagerName:    src.EmployeeData.ManagerName,
			Status:         src.EmployeeData.Status,
		}
	}

	return node
}
