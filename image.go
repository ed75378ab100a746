package jobpage

import "fmt"

// ImageCatalog is the fixed set of featured images a job page may use.
var ImageCatalog = func() []string {
	urls := make([]string, 20)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://roywikan.github.io/jobs-image/job.%d.webp", i+1)
	}
	return urls
}()

// PickImage returns the catalog entry chosen by pick, which must return an
// index in [0, n). Out-of-range picks are wrapped into range.
func PickImage(pick func(n int) int) string {
	n := len(ImageCatalog)
	i := pick(n) % n
	if i < 0 {
		i += n
	}
	return ImageCatalog[i]
}
