package cors_test

import (
	"testing"

	"github.com/parkrevil/bunner-cors-rs"
)

func BenchmarkCheck(b *testing.B) {
	cases := []struct {
		desc string
		c    *cors.Cors
		req  cors.Request
	}{
		{
			desc: "no CORS",
			c:    cors.Must(cors.CorsOptions{}),
			req:  cors.Request{Method: "GET", Origin: "https://example.com", OriginPresent: true},
		},
		{
			desc: "simple accepted, single origin",
			c: cors.Must(cors.CorsOptions{
				Origin: cors.ExactOrigin("https://example.com"),
			}),
			req: cors.Request{Method: "GET", Origin: "https://example.com", OriginPresent: true},
		},
		{
			desc: "simple rejected, single origin",
			c: cors.Must(cors.CorsOptions{
				Origin: cors.ExactOrigin("https://example.com"),
			}),
			req: cors.Request{Method: "GET", Origin: "https://evil.example", OriginPresent: true},
		},
		{
			desc: "preflight accepted from allowed origin",
			c: cors.Must(cors.CorsOptions{
				Origin:         cors.ExactOrigin("https://example.com"),
				AllowedHeaders: cors.RequestHeaders("authorization"),
				Methods:        cors.AllowMethods("GET", "POST"),
			}),
			req: cors.Request{
				Method:                             "OPTIONS",
				Origin:                             "https://example.com",
				OriginPresent:                      true,
				AccessControlRequestMethod:         "POST",
				AccessControlRequestMethodPresent:  true,
				AccessControlRequestHeaders:        []string{"authorization"},
			},
		},
		{
			desc: "preflight rejected from disallowed origin",
			c: cors.Must(cors.CorsOptions{
				Origin:         cors.ExactOrigin("https://example.com"),
				AllowedHeaders: cors.RequestHeaders("authorization"),
				Methods:        cors.AllowMethods("GET", "POST"),
			}),
			req: cors.Request{
				Method:                             "OPTIONS",
				Origin:                             "https://evil.example",
				OriginPresent:                      true,
				AccessControlRequestMethod:         "POST",
				AccessControlRequestMethodPresent:  true,
				AccessControlRequestHeaders:        []string{"authorization"},
			},
		},
		{
			desc: "simple accepted, pattern match",
			c: cors.Must(cors.CorsOptions{
				Origin: cors.ListOrigin(cors.PatternOriginEntry(`^https://([a-z0-9-]+\.)?example\.com$`)),
			}),
			req: cors.Request{Method: "GET", Origin: "https://api.example.com", OriginPresent: true},
		},
	}
	for _, tc := range cases {
		b.Run(tc.desc, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := tc.c.Check(tc.req); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
