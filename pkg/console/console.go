package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/aws-default-vpc-remover/internal/shared/types"
)

// TimeFormat is the timestamp layout of every log line.
const TimeFormat = "2006-01-02 15:04:05"

// Console é uma implementação do ConsoleInterface sobre o logger do pterm.
type Console struct {
	logger *pterm.Logger
	out    io.Writer
	ask    func(message string) (string, error)
}

// NewConsole cria um novo Console que registra mensagens a partir de level.
// format é "text" ou "json".
func NewConsole(level types.LogLevel, format string) *Console {
	return NewConsoleWithWriter(os.Stdout, level, format)
}

// NewConsoleWithWriter cria um Console que escreve em w.
func NewConsoleWithWriter(w io.Writer, level types.LogLevel, format string) *Console {
	logger := pterm.DefaultLogger.
		WithWriter(w).
		WithLevel(toPtermLevel(level)).
		WithTime(true).
		WithTimeFormat(TimeFormat)

	if format == "json" {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}

	return &Console{
		logger: logger,
		out:    w,
		ask:    askSurvey,
	}
}

func toPtermLevel(level types.LogLevel) pterm.LogLevel {
	switch level {
	case types.LogLevelDebug:
		return pterm.LogLevelDebug
	case types.LogLevelInfo:
		return pterm.LogLevelInfo
	case types.LogLevelError:
		return pterm.LogLevelError
	default:
		return pterm.LogLevelWarn
	}
}

// Cores predefinidas para uso consistente
var (
	BrightGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// Println imprime no console com uma nova linha, independente do nível de log.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogDebug registra uma mensagem de depuração.
func (c *Console) LogDebug(format string, a ...interface{}) {
	c.logger.Debug(fmt.Sprintf(format, a...))
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	c.logger.Info(fmt.Sprintf(format, a...))
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	c.logger.Warn(fmt.Sprintf(format, a...))
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	c.logger.Error(fmt.Sprintf(format, a...))
}

// LogSuccess registra uma mensagem de sucesso, exibida em qualquer nível de log.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	c.logger.Print(BrightGreen(fmt.Sprintf(format, a...)))
}

// Confirm asks the operator to type expected. Anything else, including an empty answer, is a refusal.
func (c *Console) Confirm(message, expected string) (bool, error) {
	answer, err := c.ask(BrightYellow(message))
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(answer) == expected, nil
}

func askSurvey(message string) (string, error) {
	var answer string
	prompt := &survey.Input{Message: message}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}
