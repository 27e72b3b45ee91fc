// internal/extract/epub.go
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"okura/internal/model"
)

const containerPath = "META-INF/container.xml"

const (
	// maxExpansionRatio は展開後の合計サイズを圧縮サイズの何倍まで許すか
	maxExpansionRatio = 20
	// minExpandedBytes は小さなファイルでも展開を許すサイズ
	minExpandedBytes = 1 << 20
)

// epubFiles は zip のエントリを名前で引き、展開した合計バイト数を制限する
type epubFiles struct {
	files     map[string]*zip.File
	remaining int64
}

type epubContainer struct {
	Rootfiles []struct {
		FullPath string `xml:"full-path,attr"`
	} `xml:"rootfiles>rootfile"`
}

type epubPackage struct {
	Manifest []struct {
		ID        string `xml:"id,attr"`
		Href      string `xml:"href,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"manifest>item"`
	Spine []struct {
		IDRef string `xml:"idref,attr"`
	} `xml:"spine>itemref"`
}

// EPUB は spine の順に各章の本文を取り出して連結する
func EPUB(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open epub: %v", model.ErrInvalidInput, err)
	}
	files := &epubFiles{
		files:     make(map[string]*zip.File, len(zr.File)),
		remaining: max(int64(len(data))*maxExpansionRatio, minExpandedBytes),
	}
	for _, f := range zr.File {
		files.files[f.Name] = f
	}

	var container epubContainer
	if err := decodeXML(files, containerPath, &container); err != nil {
		return "", err
	}
	if len(container.Rootfiles) == 0 {
		return "", fmt.Errorf("%w: epub has no rootfile", model.ErrInvalidInput)
	}
	opfPath := container.Rootfiles[0].FullPath

	var pkg epubPackage
	if err := decodeXML(files, opfPath, &pkg); err != nil {
		return "", err
	}

	hrefs := make(map[string]string, len(pkg.Manifest))
	for _, item := range pkg.Manifest {
		hrefs[item.ID] = item.Href
	}

	base := path.Dir(opfPath)
	chapters := make([]string, 0, len(pkg.Spine))
	for _, ref := range pkg.Spine {
		href, ok := hrefs[ref.IDRef]
		if !ok {
			continue
		}
		raw, err := files.read(path.Join(base, href))
		if err != nil {
			return "", err
		}
		text, err := HTML(raw)
		if err != nil {
			return "", err
		}
		if text != "" {
			chapters = append(chapters, text)
		}
	}
	return strings.Join(chapters, "\n\n"), nil
}

func decodeXML(files *epubFiles, name string, v any) error {
	raw, err := files.read(name)
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", model.ErrInvalidInput, name, err)
	}
	return nil
}

func (e *epubFiles) read(name string) ([]byte, error) {
	f, ok := e.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: epub entry %s not found", model.ErrInvalidInput, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open epub entry %s: %w", name, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(io.LimitReader(rc, e.remaining+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read epub entry %s: %v", model.ErrInvalidInput, name, err)
	}
	if int64(len(raw)) > e.remaining {
		return nil, fmt.Errorf("%w: epub expands beyond %d bytes", model.ErrTooLarge, e.remaining)
	}
	e.remaining -= int64(len(raw))
	return raw, nil
}
