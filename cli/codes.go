// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the commands of the errcodes tool.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/openlogs/infra/logger"
	"github.com/openlogs/infra/pkg/errors"
	"github.com/openlogs/infra/pkg/errors/codes"
	errgrpc "github.com/openlogs/infra/pkg/errors/grpc"
	"github.com/spf13/cobra"
)

var (
	cfg       = Config{LogLevel: "info", Output: outputText}
	cliLogger = logger.NewMock()
)

type descriptorView struct {
	Code      int    `json:"code"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Payload   bool   `json:"payload"`
	Public    bool   `json:"public"`
	Decodable bool   `json:"decodable"`
	Status    int    `json:"status"`
}

type codeView struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Inner   string `json:"inner"`
	Public  string `json:"public_detail"`
	Status  int    `json:"status"`
	GRPC    string `json:"grpc_code"`
}

type renderView struct {
	Kind   string `json:"kind"`
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func newCodesCmds() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "list",
			Short: "List error codes",
			Long: "List every client-facing error code\n" +
				"Usage:\n" +
				"\terrcodes list\n",
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 0 {
					logUsageCmd(cmd, cmd.Use)
					return
				}
				ds := codes.All()
				if cfg.Output == outputJSON {
					views := make([]descriptorView, 0, len(ds))
					for _, d := range ds {
						views = append(views, descriptorView{
							Code:      d.Code,
							Name:      d.Name,
							Message:   d.Message,
							Payload:   d.Payload,
							Public:    d.Public,
							Decodable: d.Decodable,
							Status:    d.StatusCode,
						})
					}
					logJSONCmd(cmd, views)
					return
				}
				printRegistry(cmd.OutOrStdout(), ds)
			},
		},
		{
			Use:   "encode <name> [payload]",
			Short: "Encode an error code",
			Long: "Print the wire form of the named error code\n" +
				"Usage:\n" +
				"\terrcodes encode SearchFieldNotFound level\n",
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) < 1 || len(args) > 2 {
					logUsageCmd(cmd, cmd.Use)
					return
				}
				d, ok := codes.LookupName(args[0])
				if !ok {
					err := errors.Message(fmt.Sprintf("unknown error code name %s", args[0]))
					cliLogger.Err("encode failed", err)
					logErrorCmd(cmd, err)
					return
				}
				var payload string
				if len(args) == 2 {
					payload = args[1]
					if !d.Payload {
						cliLogger.Warn(fmt.Sprintf("%s carries no payload, dropping %q", d.Name, payload))
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), codes.New(d.Kind, payload).Encode())
			},
		},
		{
			Use:   "decode <wire>",
			Short: "Decode an error code",
			Long: "Decode wire text into an error code. Input that cannot be decoded\n" +
				"becomes ServerInternalError carrying the raw text.\n" +
				"Usage:\n" +
				"\terrcodes decode '{\"code\":20002,\"message\":\"\",\"inner\":\"logs\"}'\n",
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 1 {
					logUsageCmd(cmd, cmd.Use)
					return
				}
				c := decode(args[0])
				view := codeView{
					Code:    c.Code(),
					Name:    c.Kind().String(),
					Message: c.Message(),
					Inner:   c.Inner(),
					Public:  c.PublicDetail(),
					Status:  c.StatusCode(),
					GRPC:    errgrpc.Status(c).Code().String(),
				}
				if cfg.Output == outputJSON {
					logJSONCmd(cmd, view)
					return
				}
				printFields(cmd.OutOrStdout(), [][2]string{
					{"code", strconv.Itoa(view.Code)},
					{"name", view.Name},
					{"message", view.Message},
					{"inner", view.Inner},
					{"public detail", view.Public},
					{"status", strconv.Itoa(view.Status)},
					{"grpc code", view.GRPC},
				})
			},
		},
		{
			Use:   "render <wire>",
			Short: "Render an error code as a server error",
			Long: "Decode wire text and print it the way server logs display it\n" +
				"Usage:\n" +
				"\terrcodes render '{\"code\":20010,\"message\":\"\",\"inner\":\"30s\"}'\n",
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 1 {
					logUsageCmd(cmd, cmd.Use)
					return
				}
				err := errors.FromCode(decode(args[0]))
				view := renderView{
					Kind:   errors.KindOf(err).String(),
					Error:  err.Error(),
					Status: errors.StatusCode(err),
				}
				if cfg.Output == outputJSON {
					logJSONCmd(cmd, view)
					return
				}
				printFields(cmd.OutOrStdout(), [][2]string{
					{"kind", view.Kind},
					{"error", view.Error},
					{"status", strconv.Itoa(view.Status)},
				})
			},
		},
	}
}

func decode(s string) codes.Code {
	c := codes.Decode(s)
	if c.Kind() == codes.KindServerInternalError && c.Inner() == s {
		cliLogger.Warn("input is not a decodable error code, reported as ServerInternalError")
	}
	return c
}

func printRegistry(out io.Writer, ds []codes.Descriptor) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintln(w, "CODE\tNAME\tSTATUS\tPUBLIC\tDECODABLE\tMESSAGE")
	for _, d := range ds {
		decodable := color.GreenString("yes")
		if !d.Decodable {
			decodable = color.YellowString("no")
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%t\t%s\t%s\n", d.Code, d.Name, d.StatusCode, d.Public, decodable, d.Message)
	}
	w.Flush()
}

func printFields(out io.Writer, fields [][2]string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(w, "%s:\t%s\n", color.CyanString(f[0]), f[1])
	}
	w.Flush()
}
