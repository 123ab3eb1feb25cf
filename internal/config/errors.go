package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrMailHostEmpty error if mail is enabled without a smtp host.
	ErrMailHostEmpty = errors.New("toml config mail.host can not be empty when mail is enabled")

	// ErrAMQPURLEmpty error if amqp is enabled without a broker url.
	ErrAMQPURLEmpty = errors.New("toml config amqp.url can not be empty when amqp is enabled")

	// ErrTokenSecretEmpty error if admin tokens are enforced without a signing secret.
	ErrTokenSecretEmpty = errors.New("toml config admin.tokensecret can not be empty when admin.enforcetoken is set")
)
