package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/heartbridge/telemetry/aggregation"
	aggregationTest "github.com/heartbridge/telemetry/aggregation/test"
	"github.com/heartbridge/telemetry/api"
	"github.com/heartbridge/telemetry/authz"
	"github.com/heartbridge/telemetry/config"
	"github.com/heartbridge/telemetry/devices"
	devicesTest "github.com/heartbridge/telemetry/devices/test"
	"github.com/heartbridge/telemetry/errors"
	"github.com/heartbridge/telemetry/measurements"
	measurementsTest "github.com/heartbridge/telemetry/measurements/test"
	"github.com/heartbridge/telemetry/token"
	"github.com/heartbridge/telemetry/users"
	usersTest "github.com/heartbridge/telemetry/users/test"
)

func primitiveHex() string {
	return primitive.NewObjectID().Hex()
}

var _ = Describe("Api", func() {
	var server *echo.Echo
	var codec *token.Codec
	var ctrl *gomock.Controller

	var usersService *usersTest.MockService
	var devicesService *devicesTest.MockService
	var measurementsService *measurementsTest.MockService
	var aggregator *aggregationTest.MockService

	var physician *users.User
	var patient *users.User

	request := func(method, target, bearer string, body interface{}) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			encoded, err := json.Marshal(body)
			Expect(err).ToNot(HaveOccurred())
			reader = bytes.NewReader(encoded)
		} else {
			reader = bytes.NewReader(nil)
		}

		req := httptest.NewRequest(method, target, reader)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if bearer != "" {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
		}
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		return rec
	}

	bearerFor := func(user *users.User) string {
		encoded, err := codec.Encode(user.Id.Hex(), *user.Email)
		Expect(err).ToNot(HaveOccurred())
		usersService.EXPECT().
			Get(gomock.Any(), gomock.Eq(user.Id.Hex())).
			Return(user, nil).
			AnyTimes()
		return encoded
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		usersService = usersTest.NewMockService(ctrl)
		devicesService = devicesTest.NewMockService(ctrl)
		measurementsService = measurementsTest.NewMockService(ctrl)
		aggregator = aggregationTest.NewMockService(ctrl)

		var err error
		codec, err = token.NewCodec(&config.Config{
			TokenSigningKeys: "primary:0123456789abcdef",
			TokenExpiration:  time.Hour,
		})
		Expect(err).ToNot(HaveOccurred())

		physician = usersTest.RandomPhysician()
		patient = usersTest.RandomAssignedPatient(physician)

		handler := api.NewHandler(api.Params{
			Users:        usersService,
			Devices:      devicesService,
			Measurements: measurementsService,
			Aggregator:   aggregator,
			Tokens:       codec,
		})

		server = echo.New()
		server.HTTPErrorHandler = errors.CustomHTTPErrorHandler
		api.RegisterRoutes(server, handler, api.NewHealthCheck(), codec, usersService, devicesService)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("POST /auth/signup", func() {
		It("creates an account and returns a usable token", func() {
			usersService.EXPECT().
				SignUp(gomock.Any(), gomock.Eq(users.SignUp{
					Email:    "ada@example.com",
					Password: "Str0ng!pass",
					Role:     users.RolePatient,
				})).
				Return(patient, nil)

			rec := request(http.MethodPost, "/auth/signup", "", api.SignUpRequest{
				Email:    "ada@example.com",
				Password: "Str0ng!pass",
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			response := api.AuthResponseDto{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Token).ToNot(BeEmpty())

			claims, err := codec.Decode(response.Token)
			Expect(err).ToNot(HaveOccurred())
			Expect(claims.SubjectId()).To(Equal(patient.Id.Hex()))
		})

		It("rejects a signup without credentials", func() {
			rec := request(http.MethodPost, "/auth/signup", "", api.SignUpRequest{})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps a duplicate email to a conflict", func() {
			usersService.EXPECT().
				SignUp(gomock.Any(), gomock.Any()).
				Return(nil, users.ErrDuplicateEmail)

			rec := request(http.MethodPost, "/auth/signup", "", api.SignUpRequest{
				Email:    "ada@example.com",
				Password: "Str0ng!pass",
			})
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("POST /auth/physician/signup", func() {
		It("creates a physician account", func() {
			usersService.EXPECT().
				SignUp(gomock.Any(), gomock.Eq(users.SignUp{
					Email:    "crick@example.com",
					Password: "Str0ng!pass",
					Role:     users.RolePhysician,
				})).
				Return(physician, nil)

			rec := request(http.MethodPost, "/auth/physician/signup", "", api.SignUpRequest{
				Email:    "crick@example.com",
				Password: "Str0ng!pass",
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("POST /auth/login", func() {
		It("maps invalid credentials to unauthorized", func() {
			usersService.EXPECT().
				Login(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, users.ErrInvalidCredentials)

			rec := request(http.MethodPost, "/auth/login", "", api.LoginRequest{
				Email:    "ada@example.com",
				Password: "Wr0ng!pass",
			})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Bearer authentication", func() {
		It("rejects protected routes without a token", func() {
			rec := request(http.MethodGet, "/devices", "", nil)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects protected routes with a garbage token", func() {
			rec := request(http.MethodGet, "/devices", "garbage", nil)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("POST /devices", func() {
		It("registers a device for the authenticated user", func() {
			device := devicesTest.RandomDevice(*patient.Id)
			devicesService.EXPECT().
				Register(gomock.Any(), gomock.Eq(patient.Id.Hex()), gomock.Eq(devices.Registration{
					DeviceId: device.PublicId(),
				})).
				Return(device, nil)

			rec := request(http.MethodPost, "/devices", bearerFor(patient), api.DeviceRegistrationRequest{
				DeviceId: device.PublicId(),
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(device.PublicId()))
		})

		It("rejects a registration without a device id", func() {
			rec := request(http.MethodPost, "/devices", bearerFor(patient), api.DeviceRegistrationRequest{})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps a taken device id to a conflict", func() {
			devicesService.EXPECT().
				Register(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, devices.ErrDuplicate)

			rec := request(http.MethodPost, "/devices", bearerFor(patient), api.DeviceRegistrationRequest{
				DeviceId: "taken",
			})
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("GET /devices", func() {
		It("omits api keys from the listing", func() {
			device := devicesTest.RandomDevice(*patient.Id)
			devicesService.EXPECT().
				List(gomock.Any(), gomock.Eq(patient.Id.Hex())).
				Return([]*devices.Device{device}, nil)

			rec := request(http.MethodGet, "/devices", bearerFor(patient), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).ToNot(ContainSubstring(*device.ApiKey))
		})
	})

	Describe("DELETE /devices/:id", func() {
		It("maps a foreign device to forbidden", func() {
			devicesService.EXPECT().
				Unregister(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(authz.ErrNotOwner)

			rec := request(http.MethodDelete, "/devices/"+primitiveHex(), bearerFor(patient), nil)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("maps an unknown device to not found", func() {
			devicesService.EXPECT().
				Unregister(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(devices.ErrNotFound)

			rec := request(http.MethodDelete, "/devices/"+primitiveHex(), bearerFor(patient), nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /physician/patients", func() {
		It("forbids patients", func() {
			aggregator.EXPECT().
				PatientsOverview(gomock.Any(), gomock.Eq(patient)).
				Return(nil, authz.ErrPhysicianRequired)

			rec := request(http.MethodGet, "/physician/patients", bearerFor(patient), nil)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("returns the overview rows for a physician", func() {
			aggregator.EXPECT().
				PatientsOverview(gomock.Any(), gomock.Eq(physician)).
				Return([]*aggregation.PatientOverview{
					{Patient: aggregation.PatientInfo{Id: patient.Id.Hex(), Email: *patient.Email}},
				}, nil)

			rec := request(http.MethodGet, "/physician/patients", bearerFor(physician), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(patient.Id.Hex()))
		})
	})

	Describe("GET /physician/patient/:id/daily", func() {
		It("requires the date parameter", func() {
			rec := request(http.MethodGet, "/physician/patient/"+patient.Id.Hex()+"/daily", bearerFor(physician), nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps a malformed date to a bad request", func() {
			aggregator.EXPECT().
				DailyDetail(gomock.Any(), gomock.Eq(physician), gomock.Eq(patient.Id.Hex()), gomock.Eq("15-03-2024")).
				Return(nil, aggregation.ErrInvalidDate)

			rec := request(http.MethodGet, "/physician/patient/"+patient.Id.Hex()+"/daily?date=15-03-2024", bearerFor(physician), nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /physician/device/:deviceId/frequency", func() {
		It("requires the seconds field", func() {
			rec := request(http.MethodPut, "/physician/device/d1/frequency", bearerFor(physician), api.FrequencyUpdateRequest{})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("forbids physicians who are not assigned to the owner", func() {
			devicesService.EXPECT().
				SetFrequency(gomock.Any(), gomock.Eq(physician), gomock.Eq("d1"), gomock.Eq(600)).
				Return(nil, authz.ErrNotAssignedPhysician)

			seconds := 600
			rec := request(http.MethodPut, "/physician/device/d1/frequency", bearerFor(physician), api.FrequencyUpdateRequest{Seconds: &seconds})
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("maps an invalid frequency to a bad request", func() {
			devicesService.EXPECT().
				SetFrequency(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(-5)).
				Return(nil, devices.ErrInvalidFrequency)

			seconds := -5
			rec := request(http.MethodPut, "/physician/device/d1/frequency", bearerFor(physician), api.FrequencyUpdateRequest{Seconds: &seconds})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("never reveals the api key in the response", func() {
			device := devicesTest.RandomDevice(*patient.Id)
			devicesService.EXPECT().
				SetFrequency(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(device, nil)

			seconds := 600
			rec := request(http.MethodPut, "/physician/device/"+device.PublicId()+"/frequency", bearerFor(physician), api.FrequencyUpdateRequest{Seconds: &seconds})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).ToNot(ContainSubstring(*device.ApiKey))
		})
	})

	Describe("Measurement ingestion", func() {
		var device *devices.Device

		deviceRequest := func(method, target string, body interface{}) *httptest.ResponseRecorder {
			var reader *bytes.Reader
			if body != nil {
				encoded, err := json.Marshal(body)
				Expect(err).ToNot(HaveOccurred())
				reader = bytes.NewReader(encoded)
			} else {
				reader = bytes.NewReader(nil)
			}

			req := httptest.NewRequest(method, target, reader)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set("x-api-key", *device.ApiKey)
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)
			return rec
		}

		BeforeEach(func() {
			device = devicesTest.RandomDevice(*patient.Id)
			devicesService.EXPECT().
				ResolveByApiKey(gomock.Any(), gomock.Eq(*device.ApiKey)).
				Return(device, nil).
				AnyTimes()
		})

		It("rejects ingestion without an api key", func() {
			rec := request(http.MethodPost, "/measurements", "", api.MeasurementRequest{})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("stores a measurement for the resolved device", func() {
			sample := measurementsTest.RandomSample()
			measurement := measurementsTest.RandomMeasurement(device.PublicId(), *sample.Timestamp)
			measurementsService.EXPECT().
				Append(gomock.Any(), gomock.Eq(device.PublicId()), gomock.Any()).
				Return(measurement, nil)

			rec := deviceRequest(http.MethodPost, "/measurements", api.MeasurementRequest{
				HeartRate: sample.HeartRate,
				SpO2:      sample.SpO2,
				Timestamp: sample.Timestamp,
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))
		})

		It("forbids a body device id that does not match the api key", func() {
			other := "someone-elses-device"
			sample := measurementsTest.RandomSample()

			rec := deviceRequest(http.MethodPost, "/measurements", api.MeasurementRequest{
				DeviceId:  &other,
				HeartRate: sample.HeartRate,
				SpO2:      sample.SpO2,
			})
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("maps missing vitals to a bad request", func() {
			measurementsService.EXPECT().
				Append(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, measurements.ErrMissingVitals)

			rec := deviceRequest(http.MethodPost, "/measurements", api.MeasurementRequest{})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("forbids listing the history of another device", func() {
			rec := deviceRequest(http.MethodGet, "/measurements/someone-elses-device", nil)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("lists the device's recent history", func() {
			measurementsService.EXPECT().
				Recent(gomock.Any(), gomock.Eq(device.PublicId()), gomock.Eq(measurements.DefaultRecentLimit)).
				Return(nil, nil)

			rec := deviceRequest(http.MethodGet, "/measurements/"+device.PublicId(), nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})
