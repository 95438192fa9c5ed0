package common

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3/client"
	"go.scnd.dev/open/sdkgen"
)

func Fiber() *client.Client {
	cc := client.New()
	cc.SetTimeout(2 * time.Minute)
	cc.SetUserAgent(sdkgen.Name + "/" + sdkgen.Version)
	return cc
}

// FiberFetch downloads a document and returns a copy of the body.
func FiberFetch(cc *client.Client, url string) ([]byte, error) {
	response, err := cc.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", url, err)
	}
	defer response.Close()

	if response.StatusCode() < 200 || response.StatusCode() > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", response.StatusCode(), url)
	}

	body := response.Body()
	return append([]byte(nil), body...), nil
}
