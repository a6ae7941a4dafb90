// Package httpclient provides a configurable HTTP client with bearer
// authentication, deterministic multipart/form-data encoding, and
// typed error classification.
//
// The client enforces two timeouts: RequestTimeout bounds the wait for
// response headers and TransferTimeout bounds the whole exchange
// (default twice the request timeout). Every Do call is exactly one
// attempt; there is no built-in retry.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL:        "https://api.example.com/v1",
//	    RequestTimeout: 30 * time.Second,
//	    Auth:           httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   "/audio/transcriptions",
//	    Body: &httpclient.MultipartBody{
//	        Fields: []httpclient.FormField{{Name: "model", Value: "whisper-large-v3"}},
//	        Files:  []httpclient.FileField{{FieldName: "file", FileName: "audio.m4a", Data: audio}},
//	    },
//	})
package httpclient
