package mailer

import (
	"fmt"
	"net/smtp"

	smtpdriver "github.com/Looping69/Telehealth-System-sub002/internal/app/drivers/mailer"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker consumes the mail queue and delivers messages over SMTP. Failed
// deliveries are logged and dropped after the broker redelivers once, per the
// DROP requeue strategy stamped on each message.
type Worker struct {
	channel *amqp091.Channel
	client  *smtpdriver.SMTPClient
	queue   string
	log     *zap.Logger
	stop    chan struct{}
}

func NewWorker(rabbitMQConnection *amqp091.Connection, client *smtpdriver.SMTPClient, queue string, logger *zap.Logger) (*Worker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	if err := channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &Worker{
		channel: channel,
		client:  client,
		queue:   queue,
		log:     logger,
		stop:    make(chan struct{}),
	}, nil
}

// Start begins consuming. It returns a stop function to halt execution.
func (w *Worker) Start() (stop func(), err error) {
	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for {
			select {
			case <-w.stop:
				w.channel.Close()
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.processDelivery(delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
		<-stopped
	}, nil
}

func (w *Worker) processDelivery(delivery amqp091.Delivery) {
	payload := new(requests.EmailPayload)
	if err := json.Unmarshal(delivery.Body, payload); err != nil {
		w.log.Error("mailer.Worker failed to decode message, dropping",
			zap.String(constvars.LoggingQueueKey, w.queue),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	if err := w.sendEmail(payload); err != nil {
		w.log.Error("mailer.Worker failed to send email",
			zap.String(constvars.LoggingQueueKey, w.queue),
			zap.String(constvars.LoggingEmailKey, payload.To),
			zap.Error(err),
		)
		// Requeue once; the broker drops it on the second failure.
		delivery.Nack(false, !delivery.Redelivered)
		return
	}

	w.log.Info("mailer.Worker email sent",
		zap.String(constvars.LoggingQueueKey, w.queue),
		zap.String(constvars.LoggingEmailKey, payload.To),
	)
	delivery.Ack(false)
}

func (w *Worker) sendEmail(payload *requests.EmailPayload) error {
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, payload.To, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", w.client.Host, w.client.Port)
	return smtp.SendMail(addr, w.client.Auth, w.client.EmailSender, []string{payload.To}, msg)
}
