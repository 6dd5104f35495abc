package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/output"
	"github.com/ukaji3/xlsheet-go/pkg/xlsheet/parser"
	"github.com/xuri/excelize/v2"
)

// styleFlags are shared by the write and append commands.
type styleFlags struct {
	bold   bool
	italic bool
	infer  bool
}

func (s *styleFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&s.bold, "bold", false, "Write values in bold")
	cmd.Flags().BoolVar(&s.italic, "italic", false, "Write values in italics")
	cmd.Flags().BoolVar(&s.infer, "infer", false, "Store numeric arguments as numbers")
}

func (s *styleFlags) style() xlsheet.Style {
	return xlsheet.Style{Bold: s.bold, Italic: s.italic}
}

func (s *styleFlags) values(args []string) []interface{} {
	return toValues(args, s.infer)
}

func (a *app) newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create an empty workbook, replacing any existing file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.open(xlsheet.ModeCreate)
			if err != nil {
				return err
			}
			defer h.Close()
			fmt.Fprintln(cmd.OutOrStdout(), h.Path())
			return nil
		},
	}
}

func (a *app) newWriteCellCommand() *cobra.Command {
	var infer bool
	cmd := &cobra.Command{
		Use:   "write-cell ADDRESS VALUE",
		Short: "Write a value to a single cell (e.g. B3)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withHandle(func(h *xlsheet.Handle) error {
				return h.WriteCell(args[0], toValues(args[1:], infer)[0])
			})
		},
	}
	cmd.Flags().BoolVar(&infer, "infer", false, "Store a numeric argument as a number")
	return cmd
}

func (a *app) newReadCellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read-cell ADDRESS",
		Short: "Print the value of a single cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withHandle(func(h *xlsheet.Handle) error {
				v, err := h.ReadCell(args[0])
				if err != nil {
					return err
				}
				if v != nil {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
				return nil
			})
		},
	}
}

func (a *app) newReadColumnCommand() *cobra.Command {
	var (
		noHeader bool
		startRow int
		pretty   bool
	)
	cmd := &cobra.Command{
		Use:   "read-column COLUMN",
		Short: "Print a column's values down to the first empty cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := parseColumn(args[0])
			if err != nil {
				return err
			}
			return a.withHandle(func(h *xlsheet.Handle) error {
				values, err := h.ReadColumn(col, !noHeader, startRow)
				if err != nil {
					return err
				}
				return printValues(cmd, values, pretty)
			})
		},
	}
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Do not treat the first cell as a header")
	cmd.Flags().IntVar(&startRow, "start-row", 1, "Row to start reading from")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func (a *app) newReadRowCommand() *cobra.Command {
	var (
		startCol string
		pretty   bool
	)
	cmd := &cobra.Command{
		Use:   "read-row ROW",
		Short: "Print a row's values up to the first empty cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseRow(args[0])
			if err != nil {
				return err
			}
			col, err := parseColumn(startCol)
			if err != nil {
				return err
			}
			return a.withHandle(func(h *xlsheet.Handle) error {
				values, err := h.ReadRow(row, col)
				if err != nil {
					return err
				}
				return printValues(cmd, values, pretty)
			})
		},
	}
	cmd.Flags().StringVar(&startCol, "start-col", "1", "Column to start reading from (number or letter)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func (a *app) newWriteColumnCommand() *cobra.Command {
	var (
		sf       styleFlags
		startRow int
	)
	cmd := &cobra.Command{
		Use:   "write-column COLUMN VALUE...",
		Short: "Write values down a column",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := parseColumn(args[0])
			if err != nil {
				return err
			}
			return a.withHandle(func(h *xlsheet.Handle) error {
				return h.WriteColumn(col, sf.values(args[1:]), startRow, sf.style())
			})
		},
	}
	sf.bind(cmd)
	cmd.Flags().IntVar(&startRow, "start-row", 1, "Row to start writing at")
	return cmd
}

func (a *app) newWriteRowCommand() *cobra.Command {
	var (
		sf       styleFlags
		startCol string
	)
	cmd := &cobra.Command{
		Use:   "write-row ROW VALUE...",
		Short: "Write values across a row",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseRow(args[0])
			if err != nil {
				return err
			}
			col, err := parseColumn(startCol)
			if err != nil {
				return err
			}
			return a.withHandle(func(h *xlsheet.Handle) error {
				return h.WriteRow(row, sf.values(args[1:]), col, sf.style())
			})
		},
	}
	sf.bind(cmd)
	cmd.Flags().StringVar(&startCol, "start-col", "1", "Column to start writing at (number or letter)")
	return cmd
}

func (a *app) newAppendColumnCommand() *cobra.Command {
	var sf styleFlags
	cmd := &cobra.Command{
		Use:   "append-column COLUMN VALUE...",
		Short: "Write values below the first empty cell of a column",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := parseColumn(args[0])
			if err != nil {
				return err
			}
			return a.withHandle(func(h *xlsheet.Handle) error {
				return h.AppendColumn(col, sf.values(args[1:]), sf.style())
			})
		},
	}
	sf.bind(cmd)
	return cmd
}

func (a *app) newAppendRowCommand() *cobra.Command {
	var sf styleFlags
	cmd := &cobra.Command{
		Use:   "append-row ROW VALUE...",
		Short: "Write values from the first empty cell of a row",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseRow(args[0])
			if err != nil {
				return err
			}
			return a.withHandle(func(h *xlsheet.Handle) error {
				return h.AppendRow(row, sf.values(args[1:]), sf.style())
			})
		},
	}
	sf.bind(cmd)
	return cmd
}

func (a *app) newCreateSheetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-sheets NAME...",
		Short: "Append named sheets to the workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withHandle(func(h *xlsheet.Handle) error {
				return h.CreateSheets(args...)
			})
		},
	}
}

func (a *app) newSheetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "List sheet names, marking the active sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withHandle(func(h *xlsheet.Handle) error {
				for _, name := range h.Sheets() {
					marker := " "
					if name == h.ActiveSheet() {
						marker = "*"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
				}
				return nil
			})
		},
	}
}

func (a *app) newDumpCommand() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every sheet's cells as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withHandle(func(h *xlsheet.Handle) error {
				wb, err := h.Snapshot()
				if err != nil {
					return err
				}
				data, err := output.ToJSON(wb, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

// withHandle loads the workbook, runs fn and releases the workbook.
func (a *app) withHandle(fn func(h *xlsheet.Handle) error) error {
	h, err := a.open(xlsheet.ModeLoad)
	if err != nil {
		return err
	}
	defer h.Close()
	return fn(h)
}

func printValues(cmd *cobra.Command, values map[string][]interface{}, pretty bool) error {
	data, err := output.ValuesToJSON(values, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// parseColumn accepts a 1-based column number or a column name such as "B".
func parseColumn(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	n, err := excelize.ColumnNameToNumber(s)
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: %w", s, err)
	}
	return n, nil
}

func parseRow(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid row %q: %w", s, err)
	}
	return n, nil
}

func toValues(args []string, infer bool) []interface{} {
	values := make([]interface{}, len(args))
	for i, arg := range args {
		if infer {
			values[i] = parser.ParseValue(arg)
		} else {
			values[i] = arg
		}
	}
	return values
}
