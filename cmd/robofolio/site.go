package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/tools/godoc/vfs/httpfs"
	"golang.org/x/tools/godoc/vfs/mapfs"
	"gopkg.in/yaml.v2"

	"github.com/robofolio/robofolio"
)

// configEnvVar is the environment variable that, if set, holds the YAML configuration in place
// of a config file.
const configEnvVar = "ROBOFOLIO_CONFIG"

func siteFromFlags() (*robofolio.Site, *siteConfig, error) {
	data, baseDir, err := readConfigFromFlags()
	if err != nil {
		return nil, nil, err
	}
	return openSiteFromConfig(data, baseDir)
}

// configFromFlags reads the configuration without opening the site it describes.
func configFromFlags() (*siteConfig, error) {
	data, _, err := readConfigFromFlags()
	if err != nil {
		return nil, err
	}
	return parseConfig(data)
}

// readConfigFromFlags returns the YAML configuration and the directory its paths are relative
// to.
func readConfigFromFlags() (data []byte, baseDir string, err error) {
	if configData := os.Getenv(configEnvVar); configData != "" {
		return []byte(configData), ".", nil
	}

	paths := filepath.SplitList(*configPath)
	for _, path := range paths {
		data, err := ioutil.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return nil, "", errors.WithMessage(err, "reading robofolio config file (from -config flag)")
		}
		return data, filepath.Dir(path), nil
	}
	return nil, "", fmt.Errorf("no robofolio.yml config file found (search paths: %s)", *configPath)
}

func parseConfig(configData []byte) (*siteConfig, error) {
	var config siteConfig
	if err := yaml.UnmarshalStrict(configData, &config); err != nil {
		return nil, errors.WithMessage(err, "reading robofolio configuration")
	}
	return &config, nil
}

// siteConfig is the shape of robofolio.yml.
type siteConfig struct {
	// Root is the directory containing the built site, or the http(s) URL of a Zip archive of it.
	// A URL fragment selects a directory in the archive ("#public/"); "#*/public/" skips the
	// archive's single top-level directory.
	Root        string        `yaml:"root"`
	BaseURLPath string        `yaml:"baseURLPath,omitempty"`
	IndexPath   string        `yaml:"indexPath,omitempty"`
	IndexURL    string        `yaml:"indexURL,omitempty"` // remote search index used by browse
	Templates   string        `yaml:"templates,omitempty"`
	Debounce    time.Duration `yaml:"debounce,omitempty"`
	Check       struct {
		IgnoreURLPattern string `yaml:"ignoreURLPattern,omitempty"`
	} `yaml:"check,omitempty"`
	TOC struct {
		Selector string `yaml:"selector,omitempty"`
	} `yaml:"toc,omitempty"`
}

func partialSiteFromConfig(config siteConfig) (*robofolio.Site, error) {
	site := &robofolio.Site{
		IndexPath:   config.IndexPath,
		TOCSelector: config.TOC.Selector,
	}
	if config.Check.IgnoreURLPattern != "" {
		var err error
		site.CheckIgnoreURLPattern, err = regexp.Compile(config.Check.IgnoreURLPattern)
		if err != nil {
			return nil, err
		}
	}
	if config.BaseURLPath != "" {
		if !strings.HasPrefix(config.BaseURLPath, "/") || !strings.HasSuffix(config.BaseURLPath, "/") {
			return nil, fmt.Errorf("invalid baseURLPath %q (must start and end with '/')", config.BaseURLPath)
		}
		site.Base = &url.URL{Path: config.BaseURLPath}
	}
	if config.IndexPath != "" && !strings.HasPrefix(config.IndexPath, "/") {
		return nil, fmt.Errorf("invalid indexPath %q (must start with '/')", config.IndexPath)
	}
	return site, nil
}

// openSiteFromConfig reads the site data from a robofolio.yml file. All file system paths in
// robofolio.yml are resolved relative to baseDir.
func openSiteFromConfig(configData []byte, baseDir string) (*robofolio.Site, *siteConfig, error) {
	config, err := parseConfig(configData)
	if err != nil {
		return nil, nil, err
	}
	if config.Root == "" {
		return nil, nil, errors.New("reading robofolio configuration: root must be set")
	}

	site, err := partialSiteFromConfig(*config)
	if err != nil {
		return nil, nil, err
	}

	if isRemoteRoot(config.Root) {
		rootURL := config.Root
		log.Println("# Downloading site data...")
		root := newCachedFileSystem(func() (http.FileSystem, error) {
			return zipFileSystemFromURLWithDirFragment(rootURL)
		})
		// Fetch now so that the program exits if the site data is unavailable.
		if _, err := root.get(); err != nil {
			return nil, nil, errors.WithMessage(err, "downloading site data")
		}
		site.Root = root
	} else {
		site.Root = http.Dir(filepath.Join(baseDir, config.Root))
	}
	if config.Templates != "" {
		site.Templates = http.Dir(filepath.Join(baseDir, config.Templates))
	}

	return site, config, nil
}

func basePath(site *robofolio.Site) string {
	if site.Base == nil {
		return "/"
	}
	return site.Base.Path
}

func isRemoteRoot(root string) bool {
	return strings.HasPrefix(root, "https://") || strings.HasPrefix(root, "http://")
}

func zipFileSystemFromURLWithDirFragment(urlStr string) (http.FileSystem, error) {
	url, err := url.Parse(urlStr)
	if err != nil {
		return nil, err
	}
	dir := url.Fragment
	url.Fragment = ""
	return zipFileSystemAtURL(url.String(), dir)
}

func zipFileSystemAtURL(url, dir string) (http.FileSystem, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, &os.PathError{Op: "Get", Path: url, Err: os.ErrNotExist}
	} else if resp.StatusCode != http.StatusOK {
		return nil, &os.PathError{Op: "Get", Path: url, Err: fmt.Errorf("HTTP response status code %d", resp.StatusCode)}
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	log.Printf("# Downloaded %s (%d bytes)", url, len(body))
	z, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, err
	}

	// Expand "*/" dir prefix to the actual top-level dir name. Archives of a repository branch
	// (such as from GitHub) put everything under a single $REPO-$REV directory.
	if strings.HasPrefix(dir, "*/") && len(z.File) > 0 {
		top := z.File[0].Name
		if i := strings.Index(top, "/"); i >= 0 {
			top = top[:i+1]
		}
		dir = top + strings.TrimPrefix(dir, "*/")
	}

	m, err := mapFromZipArchive(z, dir)
	if err != nil {
		return nil, err
	}
	return httpfs.New(mapfs.New(m)), nil
}

// mapFromZipArchive returns the contents of all files in the Zip archive under dir, keyed by
// their path relative to dir.
func mapFromZipArchive(z *zip.Reader, dir string) (map[string]string, error) {
	readFileHeader := func(zf *zip.File) ([]byte, error) {
		f, err := zf.Open()
		if err != nil {
			return nil, errors.WithMessagef(err, "open %q", zf.Name)
		}
		data, err := ioutil.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, errors.WithMessagef(err, "read %q", zf.Name)
		}
		return data, nil
	}
	readFile := func(path string) ([]byte, error) {
		for _, f := range z.File {
			if f.Name == path {
				return readFileHeader(f)
			}
		}
		return nil, &os.PathError{Op: "readFile (in zip archive)", Path: path, Err: os.ErrNotExist}
	}

	if dir != "" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	m := map[string]string{}
	for _, f := range z.File {
		if !strings.HasPrefix(f.Name, dir) || strings.HasSuffix(f.Name, "/") {
			continue
		}
		data, err := readFileHeader(f)
		if err != nil {
			return nil, err
		}

		// Dereference symlinks.
		if f.Mode()&os.ModeSymlink != 0 {
			targetPath := path.Join(path.Dir(f.Name), string(data))
			data, err = readFile(targetPath)
			if err != nil {
				if os.IsNotExist(err) {
					continue // ignore broken symlinks
				}
				return nil, errors.WithMessagef(err, "dereferencing symlink at %q", f.Name)
			}
		}

		m[strings.TrimPrefix(f.Name, dir)] = string(data)
	}
	return m, nil
}
