package export

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resumeai-backend/resume/model"
)

// A4 in inches for page.PrintToPDF.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// ChromeEngine prints the HTML resume layout through headless Chrome.
// Selected with EXPORT_ENGINE=chrome; requires a Chrome binary on the host
// (CHROME_PATH overrides discovery).
type ChromeEngine struct {
	Timeout time.Duration
}

// NewChromeEngine constructs a ChromeEngine with a 60s render timeout.
func NewChromeEngine() *ChromeEngine {
	return &ChromeEngine{Timeout: 60 * time.Second}
}

// Render produces PDF bytes by printing the HTML layout.
func (e *ChromeEngine) Render(ctx context.Context, data model.ResumeData) ([]byte, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	html, err := RenderHTML(data)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	tmpFile, err := os.CreateTemp("", "resume-*.html")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpFile.Name())
	if _, err := tmpFile.WriteString(html); err != nil {
		tmpFile.Close()
		return nil, err
	}
	if err := tmpFile.Close(); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+tmpFile.Name()),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdfBuf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
