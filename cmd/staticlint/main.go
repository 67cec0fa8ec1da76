// Package main реализует команду «staticlint» на базе multichecker
// для статического анализа кода сервиса. Инструмент объединяет
// стандартные анализаторы golang.org/x/tools, набор SA-правил
// staticcheck и собственный анализатор exitmain, запрещающий прямые
// вызовы os.Exit в функции main пакета main.
//
// Использование:
//
//	go install ./cmd/staticlint
//	staticlint ./...
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
)

func main() {
	var analyzers []*analysis.Analyzer

	analyzers = append(analyzers,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		unusedresult.Analyzer,
		ExitMainAnalyzer,
	)

	for _, la := range staticcheck.Analyzers {
		if strings.HasPrefix(la.Analyzer.Name, "SA") {
			analyzers = append(analyzers, la.Analyzer)
		}
	}

	analyzers = append(analyzers, simple.Analyzers[1].Analyzer)

	multichecker.Main(analyzers...)
}
