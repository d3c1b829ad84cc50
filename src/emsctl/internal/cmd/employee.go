package cmd

import (
	"context"
	"fmt"

	"github.com/bitswalk/ems/src/emsctl/internal/client"
	"github.com/bitswalk/ems/src/emsctl/internal/output"
	"github.com/spf13/cobra"
)

var employeeCmd = &cobra.Command{
	Use:     "employee",
	Aliases: []string{"emp"},
	Short:   "Manage employee records",
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employee records",
	RunE:  runEmployeeList,
}

var employeeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new employee record",
	RunE:  runEmployeeCreate,
}

var employeeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an employee record",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeeUpdate,
}

var employeeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an employee record",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmployeeDelete,
}

func init() {
	employeeCmd.AddCommand(employeeListCmd)
	employeeCmd.AddCommand(employeeCreateCmd)
	employeeCmd.AddCommand(employeeUpdateCmd)
	employeeCmd.AddCommand(employeeDeleteCmd)

	employeeCreateCmd.Flags().String("name", "", "Employee name (required)")
	employeeCreateCmd.Flags().String("email", "", "Employee email (required)")
	employeeCreateCmd.Flags().String("position", "", "Job title (required)")
	employeeCreateCmd.Flags().Int64("salary", 0, "Salary (required)")
	employeeCreateCmd.Flags().String("owner", "", "Owning user ID (defaults to the logged-in user)")
	employeeCreateCmd.MarkFlagRequired("name")
	employeeCreateCmd.MarkFlagRequired("email")
	employeeCreateCmd.MarkFlagRequired("position")
	employeeCreateCmd.MarkFlagRequired("salary")

	employeeUpdateCmd.Flags().String("name", "", "Employee name")
	employeeUpdateCmd.Flags().String("email", "", "Employee email")
	employeeUpdateCmd.Flags().String("position", "", "Job title")
	employeeUpdateCmd.Flags().Int64("salary", 0, "Salary")
}

func runEmployeeList(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	employees, err := c.ListEmployees(ctx)
	if err != nil {
		return err
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(employees)
	}

	if len(employees) == 0 {
		output.PrintMessage("No employee records found.")
		return nil
	}

	rows := make([][]string, len(employees))
	for i, emp := range employees {
		rows[i] = []string{emp.ID, emp.Name, emp.Email, emp.Position, client.FormatSalary(emp.Salary)}
	}
	output.PrintTable([]string{"ID", "NAME", "EMAIL", "POSITION", "SALARY"}, rows)
	return nil
}

func runEmployeeCreate(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	position, _ := cmd.Flags().GetString("position")
	salary, _ := cmd.Flags().GetInt64("salary")
	owner, _ := cmd.Flags().GetString("owner")

	if owner == "" {
		session, err := requireSession()
		if err != nil {
			return err
		}
		owner = session.UserID
	}

	req := client.CreateEmployeeRequest{
		Name:     name,
		Email:    email,
		Position: position,
		Salary:   salary,
	}

	emp, err := c.CreateEmployee(ctx, owner, req)
	if err != nil {
		return err
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(emp)
	}

	output.PrintMessage(fmt.Sprintf("Employee %q created (ID: %s)", emp.Name, emp.ID))
	return nil
}

func runEmployeeUpdate(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	req := client.UpdateEmployeeRequest{}
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		req.Name = &v
	}
	if cmd.Flags().Changed("email") {
		v, _ := cmd.Flags().GetString("email")
		req.Email = &v
	}
	if cmd.Flags().Changed("position") {
		v, _ := cmd.Flags().GetString("position")
		req.Position = &v
	}
	if cmd.Flags().Changed("salary") {
		v, _ := cmd.Flags().GetInt64("salary")
		req.Salary = &v
	}

	emp, err := c.UpdateEmployee(ctx, args[0], req)
	if err != nil {
		return err
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(emp)
	}

	output.PrintMessage(fmt.Sprintf("Employee %q updated.", emp.Name))
	return nil
}

func runEmployeeDelete(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	if err := c.DeleteEmployee(ctx, args[0]); err != nil {
		return err
	}

	if getOutputFormat() == "json" {
		return output.PrintJSON(map[string]string{"message": "Employee deleted", "id": args[0]})
	}

	output.PrintMessage(fmt.Sprintf("Employee %s deleted.", args[0]))
	return nil
}
