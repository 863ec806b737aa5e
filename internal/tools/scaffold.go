package tools

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/hints"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
)

const (
	frameworkNextJS = "nextjs"
	frameworkReact  = "react"
)

type scaffoldArgs struct {
	Template     string `json:"template" jsonschema:"enum=equity-overview,enum=crypto-trader,enum=portfolio-tracker" jsonschema_description:"Dashboard template to scaffold"`
	Symbol       string `json:"symbol,omitempty" jsonschema_description:"Ticker or token symbol (default \"AAPL\" for equity, \"BTC\" for crypto)"`
	Framework    string `json:"framework,omitempty" jsonschema:"enum=nextjs,enum=react" jsonschema_description:"Target framework (default nextjs)"`
	IncludeTypes *bool  `json:"includeTypes,omitempty" jsonschema_description:"Include TypeScript type annotations (default true)"`
}

// ScaffoldFile is one generated source file.
type ScaffoldFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type scaffoldData struct {
	Component    string
	Symbol       string
	IncludeTypes bool
}

var scaffoldComponents = map[string]string{
	hints.TemplateEquityOverview:   "EquityOverview",
	hints.TemplateCryptoTrader:     "CryptoTrader",
	hints.TemplatePortfolioTracker: "PortfolioTracker",
}

const prismClientTemplate = `import PrismFinanceOS from "prism-finance-os";

const prism = new PrismFinanceOS({
  apiKey: process.env.PRISM_API_KEY{{if .IncludeTypes}}!{{end}},
});

export default prism;
`

const nextPageTemplate = `"use client";

import { {{.Component}} } from "@prismapi/ui";
import prism from "../../lib/prism";

export default function DashboardPage() {
  return (
    <main className="min-h-screen bg-zinc-950 p-6">
      <{{.Component}} symbol="{{.Symbol}}" client={prism} />
    </main>
  );
}
`

const nextLayoutTemplate = `import type { Metadata } from "next";
import { PrismProvider } from "@prismapi/ui";
import "./globals.css";

export const metadata: Metadata = {
  title: "PRISM Dashboard",
  description: "Financial dashboard powered by PrismOS",
};

export default function RootLayout({
  children,
}: {
  children: React.ReactNode;
}) {
  return (
    <html lang="en">
      <body>
        <PrismProvider>
          {children}
        </PrismProvider>
      </body>
    </html>
  );
}
`

const reactDashboardTemplate = `import { {{.Component}} } from "@prismapi/ui";
import prism from "./prism";

export default function Dashboard() {
  return (
    <main className="min-h-screen bg-zinc-950 p-6">
      <{{.Component}} symbol="{{.Symbol}}" client={prism} />
    </main>
  );
}
`

const reactAppTemplate = `import { PrismProvider } from "@prismapi/ui";
import Dashboard from "./Dashboard";

export default function App() {
  return (
    <PrismProvider>
      <Dashboard />
    </PrismProvider>
  );
}
`

type scaffoldFileTemplate struct {
	filename string
	tmpl     *template.Template
}

func mustFile(filename, text string) scaffoldFileTemplate {
	return scaffoldFileTemplate{filename: filename, tmpl: template.Must(template.New(filename).Parse(text))}
}

var scaffoldLayouts = map[string][]scaffoldFileTemplate{
	frameworkNextJS: {
		mustFile("app/dashboard/page.tsx", nextPageTemplate),
		mustFile("app/layout.tsx", nextLayoutTemplate),
		mustFile("lib/prism.ts", prismClientTemplate),
	},
	frameworkReact: {
		mustFile("src/Dashboard.tsx", reactDashboardTemplate),
		mustFile("src/App.tsx", reactAppTemplate),
		mustFile("src/prism.ts", prismClientTemplate),
	},
}

// Scaffold renders the dashboard files for a template and framework.
func Scaffold(templateName, symbol, framework string, includeTypes bool) ([]ScaffoldFile, error) {
	component, ok := scaffoldComponents[templateName]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", templateName)
	}
	layout, ok := scaffoldLayouts[framework]
	if !ok {
		return nil, fmt.Errorf("unknown framework %q", framework)
	}
	if symbol == "" {
		symbol = "AAPL"
		if templateName == hints.TemplateCryptoTrader {
			symbol = "BTC"
		}
	}

	data := scaffoldData{Component: component, Symbol: symbol, IncludeTypes: includeTypes}
	files := make([]ScaffoldFile, 0, len(layout))
	for _, f := range layout {
		var sb strings.Builder
		if err := f.tmpl.Execute(&sb, data); err != nil {
			return nil, fmt.Errorf("render %s: %w", f.filename, err)
		}
		files = append(files, ScaffoldFile{Filename: f.filename, Content: sb.String()})
	}
	return files, nil
}

func scaffoldTools() []*mcp.Tool {
	return []*mcp.Tool{
		mcp.Bind("prism_scaffold",
			"Generate ready-to-run dashboard code using @prismapi/ui components. "+
				"Returns an array of { filename, content } objects that can be written to disk "+
				"to create a working financial dashboard.",
			func(_ context.Context, a scaffoldArgs) (any, error) {
				includeTypes := a.IncludeTypes == nil || *a.IncludeTypes
				return Scaffold(a.Template, a.Symbol, a.Framework, includeTypes)
			},
			mcp.Default("framework", frameworkNextJS),
			mcp.Default("includeTypes", true)),
	}
}
